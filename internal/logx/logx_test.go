package logx

import (
	"sync"
	"testing"
)

func TestConcurrentFirstUse(t *testing.T) {
	var (
		wg      sync.WaitGroup
		results [8]interface{}
	)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = L()
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		if r == nil {
			t.Fatalf("goroutine %d got a nil logger", i)
		}
		if r != results[0] {
			t.Errorf("goroutine %d got a different logger instance", i)
		}
	}
}
