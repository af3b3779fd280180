package event

import "testing"

func TestDispatchDeliversInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.SubscribeFunc(EnemyKilled, func(Event) { got = append(got, "first") })
	d.SubscribeFunc(EnemyKilled, func(Event) { got = append(got, "second") })
	d.SubscribeFunc(GameOver, func(Event) { got = append(got, "wrong type") })

	d.Dispatch(Event{Type: EnemyKilled, Data: EnemyKilledData{Bounty: 1}})

	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("delivery = %v, want [first second]", got)
	}
}

func TestDispatchWithoutListeners(t *testing.T) {
	d := NewDispatcher()
	d.Dispatch(Event{Type: WaveEnded}) // must not panic
}
