package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/stridesync/internal/activities"
	"github.com/2beens/stridesync/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const (
	rootFolderName   = "stridesync-backup"
	backupFileFormat = "activities-%s.json"
)

type activitiesSource interface {
	GetActivities(ctx context.Context) ([]activities.Activity, error)
}

// GoogleDriveBackupService uploads the currently stored activities
// as a timestamped JSON file into a drive backup folder.
type GoogleDriveBackupService struct {
	service         *drive.Service
	source          activitiesSource
	backupsFolderId string
}

func NewGoogleDriveBackupService(
	ctx context.Context,
	credentialsJson []byte,
	source activitiesSource,
) (*GoogleDriveBackupService, error) {
	driveService, err := drive.NewService(ctx, option.WithCredentialsJSON(credentialsJson))
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve drive client: %w", err)
	}

	s := &GoogleDriveBackupService{
		service: driveService,
		source:  source,
	}

	driveRoot, err := driveService.
		Files.List().
		Fields("files(id, name)").
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve files: %w", err)
	}

	for _, f := range driveRoot.Files {
		if f.Name == rootFolderName {
			s.backupsFolderId = f.Id
			break
		}
	}

	if s.backupsFolderId == "" {
		s.backupsFolderId, err = s.createRootBackupsFolder()
		if err != nil {
			return nil, fmt.Errorf("failed to create root backups folder: %w", err)
		}
		log.Debugf("root backups folder created: %s", s.backupsFolderId)
	}

	log.Debugf("backups folder ID: %s", s.backupsFolderId)

	return s, nil
}

// DoBackup uploads a snapshot of the stored activities. An empty store is
// not an error, there is simply nothing to back up.
func (s *GoogleDriveBackupService) DoBackup(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "gdriveBackup.doBackup")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	storedActivities, err := s.source.GetActivities(ctx)
	if err != nil {
		return fmt.Errorf("get activities for backup: %w", err)
	}

	if len(storedActivities) == 0 {
		log.Debugln("no stored activities, skipping backup")
		return nil
	}

	activitiesBytes, err := json.Marshal(storedActivities)
	if err != nil {
		return fmt.Errorf("marshal activities for backup: %w", err)
	}

	backupFileMeta := &drive.File{
		Name:     fmt.Sprintf(backupFileFormat, time.Now().UTC().Format("2006-01-02T15-04-05")),
		MimeType: "application/json",
		Parents:  []string{s.backupsFolderId},
	}

	backupFile, err := s.service.
		Files.Create(backupFileMeta).
		Fields("id, parents").
		Media(bytes.NewReader(activitiesBytes)).
		Do()
	if err != nil {
		return fmt.Errorf("create backup file: %w", err)
	}

	log.Debugf("backup created: %s (%d activities)", backupFile.Id, len(storedActivities))

	return nil
}

// ListBackupFiles returns the backup files currently in the backup folder
func (s *GoogleDriveBackupService) ListBackupFiles() ([]*drive.File, error) {
	query := fmt.Sprintf(
		"'%s' in parents and mimeType != 'application/vnd.google-apps.folder' and trashed = false",
		s.backupsFolderId,
	)
	backups, err := s.service.
		Files.List().
		Q(query).
		Fields("files(id, name)").
		Do()
	if err != nil {
		return nil, err
	}

	return backups.Files, nil
}

func (s *GoogleDriveBackupService) createRootBackupsFolder() (string, error) {
	backupsFolderMeta := &drive.File{
		Name:     rootFolderName,
		MimeType: "application/vnd.google-apps.folder",
	}

	bfRes, err := s.service.
		Files.Create(backupsFolderMeta).
		Fields("id").
		Do()
	if err != nil {
		return "", err
	}

	return bfRes.Id, nil
}
