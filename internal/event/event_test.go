package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchReachesSubscribersInOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(BaseHit, ListenerFunc(func(Event) { order = append(order, "first") }))
	d.Subscribe(BaseHit, ListenerFunc(func(Event) { order = append(order, "second") }))

	d.Dispatch(Event{Type: BaseHit, Data: BaseData{HP: 2}})
	d.Dispatch(Event{Type: GameOver})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("Expected [first second], got %v", order)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r, AllTypes...)
	d.Dispatch(Event{Type: MaskSpawned})
	d.Unsubscribe(MaskSpawned, r)
	d.Dispatch(Event{Type: MaskSpawned})
	d.Dispatch(Event{Type: MaskClaimed})

	if len(r.got) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(r.got))
	}
	if r.got[1].Type != MaskClaimed {
		t.Errorf("Expected MaskClaimed, got %s", r.got[1].Type)
	}
}

func TestNilDispatcherIsSilent(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Type: GameOver})
}
