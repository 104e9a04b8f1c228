package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eqsolver/internal/cache"
	"eqsolver/internal/server"
)

func main() {
	addr := flag.String("addr", ":8080", "адрес HTTP-сервера")
	redisAddr := flag.String("redis", "", "адрес Redis для кэша решений; пусто — кэш в памяти")
	cacheTTL := flag.Duration("cache-ttl", 24*time.Hour, "срок жизни записи в Redis")
	flag.Parse()

	var c cache.Cache = cache.NewMemory()
	if *redisAddr != "" {
		rc := cache.NewRedis(*redisAddr, *cacheTTL)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rc.Ping(ctx)
		cancel()
		if err != nil {
			log.Fatalf("Redis %s недоступен: %v", *redisAddr, err)
		}
		defer rc.Close()
		c = rc
		log.Println("Кэш решений в Redis:", *redisAddr)
	}

	srv := &http.Server{
		Addr:        *addr,
		Handler:     server.NewRouter(server.New(c)),
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Println("Сервер запущен на", *addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Ошибка запуска сервера: %v", err)
		return
	case <-quit:
		log.Println("Остановка сервера...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Ошибка при остановке сервера: %v", err)
	}
}
