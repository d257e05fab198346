package graph_test

import (
	"testing"
	"time"

	"github.com/vsariola/kuvaaja/graph"
)

func collect(a *graph.Alerts) []graph.Alert {
	var list []graph.Alert
	a.Iterate(func(al graph.Alert) bool {
		list = append(list, al)
		return true
	})
	return list
}

func TestAlertsDeduplicate(t *testing.T) {
	var a graph.Alerts
	a.Add("unexpected token", graph.Error)
	a.Add("unexpected token", graph.Error)
	a.Add("unexpected token", graph.Warning)
	if got := len(collect(&a)); got != 2 {
		t.Errorf("got %d alerts, want 2", got)
	}
}

func TestAlertsFadeAndExpire(t *testing.T) {
	var a graph.Alerts
	a.Add("hello", graph.Info)
	if !a.Update(50 * time.Millisecond) {
		t.Fatal("Update returned false with a live alert")
	}
	list := collect(&a)
	if len(list) != 1 || list[0].FadeLevel <= 0 || list[0].FadeLevel >= 1 {
		t.Fatalf("expected a partially faded-in alert, got %+v", list)
	}
	a.Update(time.Second)
	if list = collect(&a); len(list) != 1 || list[0].FadeLevel != 1 {
		t.Fatalf("expected a fully faded-in alert, got %+v", list)
	}
	// run past the display duration plus the fade-out
	if a.Update(4 * time.Second) {
		t.Error("Update returned true after the alert expired")
	}
	if got := len(collect(&a)); got != 0 {
		t.Errorf("got %d alerts after expiry, want 0", got)
	}
}

func TestAlertsAddRestartsTimer(t *testing.T) {
	var a graph.Alerts
	a.Add("again", graph.Info)
	a.Update(2900 * time.Millisecond)
	a.Add("again", graph.Info)
	if !a.Update(200 * time.Millisecond) {
		t.Error("re-added alert expired on the original timer")
	}
}
