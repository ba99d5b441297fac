package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestSingleFlight_SharesConcurrentCalls(t *testing.T) {
	var flight SingleFlight
	var executions atomic.Int32

	release := make(chan struct{})
	started := make(chan struct{})

	go func() {
		_, _, _ = flight.Do("standings", func() (any, error) {
			executions.Add(1)
			close(started)
			<-release
			return 42, nil
		})
	}()

	<-started

	var wg sync.WaitGroup
	shared := make([]bool, 4)
	for i := range shared {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			val, err, wasShared := flight.Do("standings", func() (any, error) {
				executions.Add(1)
				return 42, nil
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if val != 42 {
				t.Errorf("unexpected value: %v", val)
			}
			shared[idx] = wasShared
		}(i)
	}

	close(release)
	wg.Wait()

	if got := executions.Load(); got != 1 {
		t.Fatalf("expected a single execution, got %d", got)
	}
	for idx, wasShared := range shared {
		if !wasShared {
			t.Fatalf("call %d was not shared", idx)
		}
	}
}

func TestSingleFlight_DistinctKeysRunIndependently(t *testing.T) {
	var flight SingleFlight

	val, err, shared := flight.Do("a", func() (any, error) { return "a", nil })
	if err != nil || shared || val != "a" {
		t.Fatalf("unexpected result: %v %v %v", val, err, shared)
	}

	val, err, shared = flight.Do("b", func() (any, error) { return "b", nil })
	if err != nil || shared || val != "b" {
		t.Fatalf("unexpected result: %v %v %v", val, err, shared)
	}
}
