// Command radxcore is the headless anonymizer core entrypoint (spec.md
// §6): a single `-c` flag names a ProjectModel.json, after which the
// process binds the local AE and runs until signalled.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/codeninja55/go-radx/dicom/uid"
	"github.com/codeninja55/go-radx/dimse/dul"
	"github.com/codeninja55/go-radx/dimse/scu"
	"github.com/codeninja55/go-radx/internal/anonengine"
	"github.com/codeninja55/go-radx/internal/config"
	"github.com/codeninja55/go-radx/internal/control"
	"github.com/codeninja55/go-radx/internal/export"
	"github.com/codeninja55/go-radx/internal/ingest"
	"github.com/codeninja55/go-radx/internal/phiindex"
	"github.com/codeninja55/go-radx/internal/retrieval"
	"github.com/codeninja55/go-radx/internal/rlog"
	"github.com/codeninja55/go-radx/internal/storage"
)

const (
	exitClean        = 0
	exitConfigError  = 2
	exitBindFailure  = 3
	exitStorageError = 4
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("c", "", "path to ProjectModel.json")
	flag.Parse()

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "radxcore: -c <path to ProjectModel.json> is required")
		return exitConfigError
	}

	model, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "radxcore: config error: %v\n", err)
		return exitConfigError
	}

	logger := rlog.New("main", model.LoggingLevel)

	store, err := loadOrCreateStore(model)
	if err != nil {
		logger.Errorf("startup", "phi index: %v", err)
		return exitStorageError
	}

	script, err := loadScript(model)
	if err != nil {
		logger.Errorf("startup", "anonymizer script: %v", err)
		return exitConfigError
	}

	storageStore := storage.New(model.StorageDir)
	allowedStorageClasses := toSet(model.StorageClasses)

	engine := anonengine.New(anonengine.Config{
		Store:                 store,
		Script:                script,
		Storage:               storageStore,
		AllowedStorageClasses: allowedStorageClasses,
		ProjectName:           model.ProjectName,
		SiteID:                model.SiteID,
		Logger:                rlog.New("anonengine", model.LoggingLevel),
	})

	snapshotPath := filepath.Join(model.StorageDir, "private", "AnonymizerModel.bin")
	pipeline := ingest.New(ingest.Config{
		QueueCapacity:               model.QueueCapacity,
		WorkerCount:                 model.Workers.AnonymizerWorkers,
		WorkerDequeueTimeout:        secondsToDuration(model.WorkerDequeueTimeout),
		WorkerIdleSleep:             secondsToDuration(model.WorkerIdleSleepSecs),
		AutosaveInterval:            secondsToDuration(model.AutosaveIntervalSecs),
		MemoryBackoffThresholdBytes: model.MemoryBackoffThresholdBytes,
		MemoryBackoffSleep:          secondsToDuration(model.MemoryBackoffSleepSeconds),
		MemoryBackoffMaxRetries:     model.MemoryBackoffMaxRetries,
		Anonymizer:                  engine,
		Snapshotter:                 store,
		SnapshotPath:                snapshotPath,
		SaveFunc:                    store.Save,
		Logger:                      rlog.New("ingest", model.LoggingLevel),
	})

	retrievalOrch := retrieval.New(retrieval.Config{
		NewClient: func() *scu.Client { return newQueryClient(model) },
		Index:     store,
		Queue:     pipeline,
		Logger:    rlog.New("retrieval", model.LoggingLevel),
	})

	exportOrch := export.New(export.Config{
		StorageDir:  model.StorageDir,
		Concurrency: model.Workers.ExportWorkers,
		BatchSize:   model.ExportBatchSize,
		Logger:      rlog.New("export", model.LoggingLevel),
	})

	ctrl := control.New(control.Config{
		Model:          model,
		Store:          store,
		Echo:           pipeline,
		StoreHandler:   pipeline,
		Ingest:         pipeline,
		AbortRetrieval: retrievalOrch.AbortMove,
		AbortExport:    exportOrch.AbortExport,
		StorageDir:     model.StorageDir,
		NewMoveClient:  func() *scu.Client { return newExportClient(model) },
		Logger:         rlog.New("control", model.LoggingLevel),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pipeline.Start(ctx)
	if err := ctrl.StartSCP(ctx); err != nil {
		logger.Errorf("startup", "start scp: %v", err)
		return exitBindFailure
	}

	logger.Infof("startup", "%s ready on %s:%d", model.ProjectName, model.LocalAE.Host, model.LocalAE.Port)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutdown", "signal received, draining")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), secondsToDuration(float64(model.Timeouts.NetworkSeconds)))
	defer shutdownCancel()

	if err := ctrl.StopSCP(shutdownCtx); err != nil {
		logger.Errorf("shutdown", "%v", err)
		return exitStorageError
	}

	csvPath := filepath.Join(model.StorageDir, "private", "phi_export", "report.csv")
	if err := ctrl.CreatePHICSV(csvPath); err != nil {
		logger.Errorf("shutdown", "phi csv: %v", err)
	}

	logger.Info("shutdown", "clean")
	return exitClean
}

func loadOrCreateStore(model *config.Model) (*phiindex.Store, error) {
	snapshotPath := filepath.Join(model.StorageDir, "private", "AnonymizerModel.bin")
	if _, err := os.Stat(snapshotPath); err == nil {
		return phiindex.Load(snapshotPath)
	}
	return phiindex.New(model.SiteID, model.UIDRoot, model.MaxPatients), nil
}

func loadScript(model *config.Model) (*anonengine.Script, error) {
	if model.ScriptPath == "" {
		return anonengine.DefaultScript(), nil
	}
	data, err := os.ReadFile(model.ScriptPath) //nolint:gosec // G304: operator-provided script path
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", model.ScriptPath, err)
	}
	return anonengine.ParseScript(data)
}

func toSet(values []string) map[string]bool {
	out := make(map[string]bool, len(values))
	for _, v := range values {
		out[v] = true
	}
	return out
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

// newQueryClient builds an SCU client against the configured query AE,
// negotiating Study-Root Q/R Find/Move (used by move_studies, spec.md §4.F).
func newQueryClient(model *config.Model) *scu.Client {
	return scu.NewClient(scu.Config{
		CallingAETitle: model.LocalAE.AETitle,
		CalledAETitle:  model.QueryAE.AETitle,
		RemoteAddr:     fmt.Sprintf("%s:%d", model.QueryAE.Host, model.QueryAE.Port),
		PresentationContexts: []dul.PresentationContextRQ{
			{ID: 1, AbstractSyntax: uid.StudyRootQueryRetrieveInformationModelFind.String(), TransferSyntaxes: model.TransferSyntaxes},
			{ID: 3, AbstractSyntax: uid.StudyRootQueryRetrieveInformationModelMove.String(), TransferSyntaxes: model.TransferSyntaxes},
		},
	})
}

// newExportClient builds an SCU client against the configured export AE,
// negotiating Verification plus every configured Storage SOP class (used
// by export_patients, spec.md §4.G, and by the control plane's C-MOVE
// sub-operation sends).
func newExportClient(model *config.Model) *scu.Client {
	contexts := []dul.PresentationContextRQ{
		{ID: 1, AbstractSyntax: uid.VerificationSOPClass.String(), TransferSyntaxes: model.TransferSyntaxes},
	}
	id := uint8(3)
	for _, sopClass := range model.StorageClasses {
		contexts = append(contexts, dul.PresentationContextRQ{ID: id, AbstractSyntax: sopClass, TransferSyntaxes: model.TransferSyntaxes})
		id += 2
	}
	return scu.NewClient(scu.Config{
		CallingAETitle:       model.LocalAE.AETitle,
		CalledAETitle:        model.ExportAE.AETitle,
		RemoteAddr:           fmt.Sprintf("%s:%d", model.ExportAE.Host, model.ExportAE.Port),
		PresentationContexts: contexts,
	})
}
