package main

import (
	"context"
	"flag"
	"net"
	"os"

	"github.com/2beens/stridesync/internal/activities"
	"github.com/2beens/stridesync/internal/activities/backup"
	"github.com/2beens/stridesync/internal/logging"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

// activities google drive backup cmd

func main() {
	credentialsFile := flag.String(
		"gd-creds",
		"./stridesync-drive-credentials.json",
		"google drive credentials json",
	)
	redisHost := flag.String("redis-host", "localhost", "redis host")
	redisPort := flag.String("redis-port", "6379", "redis port")
	logsPath := flag.String("logs-path", "", "logs file path (empty for stdout)")
	list := flag.Bool("list", false, "list current backup files instead of creating a new one")

	flag.Parse()

	logging.Setup(logging.LoggerSetupParams{
		LogFileName: *logsPath,
		LogToStdout: true,
		LogLevel:    "trace",
	})

	log.Println("starting activities backup ...")

	if *credentialsFile == "" {
		log.Fatalln("google drive credentials json not specified")
	}

	credentialsFileBytes, err := os.ReadFile(*credentialsFile)
	if err != nil {
		log.Fatalf("unable to read credentials file: %s", err)
	}

	ctx := context.Background()

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(*redisHost, *redisPort),
		Password: os.Getenv("STRIDESYNC_REDIS_PASS"),
		DB:       0,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to ping redis: %s", err)
	}

	backupService, err := backup.NewGoogleDriveBackupService(
		ctx,
		credentialsFileBytes,
		activities.NewStore(rdb),
	)
	if err != nil {
		log.Fatalf("failed to create google drive backup service: %s", err)
	}

	if *list {
		backupFiles, err := backupService.ListBackupFiles()
		if err != nil {
			log.Fatalf("failed to list backup files: %s", err)
		}
		for _, f := range backupFiles {
			log.Printf(" > %s: %s", f.Id, f.Name)
		}
		return
	}

	if err := backupService.DoBackup(ctx); err != nil {
		log.Fatalf("backup failed: %s", err)
	}

	log.Println("backup done!")
}
