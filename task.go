package sweep

import "sync"

// taskCollect splits the index range [0, n) across workers. Each worker
// appends into a private buffer, so the parallel phase needs no locking;
// after the join the buffers are merged into target in one sequential pass.
// The merge order across workers is unspecified, consumers sort afterwards.
func taskCollect[T any](workersCount, n int, target *[]T, fn func(start, end int, local *[]T)) {
	var wg sync.WaitGroup
	chunkSize := (n + workersCount - 1) / workersCount
	if chunkSize == 0 {
		chunkSize = 1
	}
	locals := make([][]T, workersCount)

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(workerID, start, end int) {
			defer wg.Done()
			fn(start, end, &locals[workerID])
		}(workerID, workerID*chunkSize, min((workerID+1)*chunkSize, n))
	}
	wg.Wait()

	total := len(*target)
	for _, local := range locals {
		total += len(local)
	}
	if cap(*target) < total {
		grown := make([]T, len(*target), total)
		copy(grown, *target)
		*target = grown
	}
	for _, local := range locals {
		*target = append(*target, local...)
	}
}
