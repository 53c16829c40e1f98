package cron

import (
	"context"
	"log"
	"time"

	"santai/config"
	commissionSvc "santai/services/commission"
	depositSvc "santai/services/deposit"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const (
	TypeCommissionSweep = "commission:sweep"
	TypeDepositExpire   = "deposit:expire"
)

// InitSweepWorker runs the periodic sweep worker in background. It schedules
// the commission overdue sweep and the deposit expiry sweep on fixed intervals
// and processes them through an asynq server.
func InitSweepWorker(cfg *config.Config, commission commissionSvc.CommissionService, deposit depositSvc.DepositService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisSweepDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCommissionSweep, handleCommissionSweep(commission))
	mux.HandleFunc(TypeDepositExpire, handleDepositExpire(deposit))

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: time.UTC})
	if _, err := scheduler.Register("@every 5m", asynq.NewTask(TypeCommissionSweep, nil)); err != nil {
		log.Fatalf("[SweepWorker] ❗ Failed to register commission sweep: %v", err)
	}
	if _, err := scheduler.Register("@every 10m", asynq.NewTask(TypeDepositExpire, nil)); err != nil {
		log.Fatalf("[SweepWorker] ❗ Failed to register deposit expiry sweep: %v", err)
	}

	// Start Redis health monitor
	go monitorRedisConnection(cfg)

	go func() {
		log.Println("[SweepWorker] 🚀 Starting sweep scheduler...")
		if err := scheduler.Run(); err != nil {
			log.Fatalf("[SweepWorker] ❗ Scheduler stopped: %v", err)
		}
	}()

	// Start async worker with retry logic
	go func() {
		log.Println("[SweepWorker] 🚀 Starting sweep worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SweepWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SweepWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleCommissionSweep(commission commissionSvc.CommissionService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		if err := commission.CheckOverduePayments(); err != nil {
			log.Printf("[SweepWorker] ❌ Commission sweep failed: %v", err)
			return err
		}
		return nil
	}
}

func handleDepositExpire(deposit depositSvc.DepositService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		if err := deposit.ExpireDeposits(); err != nil {
			log.Printf("[SweepWorker] ❌ Deposit expiry sweep failed: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection(cfg *config.Config) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisSweepDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[SweepWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
