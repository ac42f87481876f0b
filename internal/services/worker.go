package services

import (
	"context"
	"log"
	"sync"
)

// Worker schedules background evaluation tasks. Scheduling is
// fire-and-forget: one short-lived goroutine per application, no queue
// bound, no cancellation handle and no retry. A task scheduled before
// Stop runs to completion; Stop waits for in-flight tasks.
type Worker interface {
	Schedule(job EvaluationJob)
	Stop()
}

type worker struct {
	evaluator EvaluatorService
	wg        sync.WaitGroup
	stopChan  chan struct{}
	stopOnce  sync.Once
}

func NewWorker(evaluator EvaluatorService) Worker {
	return &worker{
		evaluator: evaluator,
		stopChan:  make(chan struct{}),
	}
}

// Schedule implements Worker.
func (w *worker) Schedule(job EvaluationJob) {
	select {
	case <-w.stopChan:
		log.Printf("⚠️  Worker stopped, dropping evaluation for application %s\n", job.ApplicationID)
		return
	default:
	}

	// Detach the payload from the caller's buffers.
	data := make([]byte, len(job.ResumeData))
	copy(data, job.ResumeData)
	job.ResumeData = data

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		log.Printf("📥 Evaluation scheduled for application %s\n", job.ApplicationID)
		if err := w.evaluator.EvaluateApplication(context.Background(), job); err != nil {
			log.Printf("❌ Evaluation failed for application %s: %v\n", job.ApplicationID, err)
		}
	}()
}

// Stop implements Worker.
func (w *worker) Stop() {
	w.stopOnce.Do(func() {
		log.Println("🛑 Stopping worker...")
		close(w.stopChan)
		w.wg.Wait()
		log.Println("✅ Worker stopped")
	})
}
