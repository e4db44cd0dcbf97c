package main

import (
	"fmt"
	"sync"

	"github.com/ninghz77/chess/bench"
)

func perft(depth int, fen string, parallel bool) error {
	out := make(chan string)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for line := range out {
			fmt.Println(line)
		}
	}()

	err := bench.Perft(depth, fen, parallel, true, out)
	close(out)
	wg.Wait()
	return err
}
