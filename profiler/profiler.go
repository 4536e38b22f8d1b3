package profiler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"polyfall/logger"
)

// ErrAlreadyProfiling is returned by Start while a capture is running
var ErrAlreadyProfiling = errors.New("already profiling")

// ErrNotProfiling is returned by Stop when no capture is running
var ErrNotProfiling = errors.New("not profiling")

// Profiler captures a CPU profile and an execution trace of a run
type Profiler struct {
	mu          sync.Mutex
	isProfiling bool
	profilesDir string
	baseName    string
	cpuFile     *os.File
	traceFile   *os.File
	log         *logger.Logger
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string) *Profiler {
	return &Profiler{
		profilesDir: dir,
		log:         logger.New(logger.Profiler),
	}
}

// Start begins capturing. The files are named after reason and the start time.
func (p *Profiler) Start(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling {
		return ErrAlreadyProfiling
	}
	if err := os.MkdirAll(p.profilesDir, 0755); err != nil {
		return fmt.Errorf("failed to create profiles dir: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	baseName := fmt.Sprintf("%s-%s", reason, timestamp)

	cpuFile, err := os.Create(filepath.Join(p.profilesDir, baseName+".cpu.prof"))
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	if err := pprof.StartCPUProfile(cpuFile); err != nil {
		cpuFile.Close()
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}

	traceFile, err := os.Create(filepath.Join(p.profilesDir, baseName+".trace"))
	if err != nil {
		pprof.StopCPUProfile()
		cpuFile.Close()
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	if err := trace.Start(traceFile); err != nil {
		pprof.StopCPUProfile()
		cpuFile.Close()
		traceFile.Close()
		return fmt.Errorf("failed to start trace: %w", err)
	}

	p.isProfiling = true
	p.baseName = baseName
	p.cpuFile = cpuFile
	p.traceFile = traceFile
	return nil
}

// Stop ends the capture, closes the files and logs a short summary.
// It returns the paths of the CPU profile and the trace.
func (p *Profiler) Stop() (cpuPath, tracePath string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.isProfiling {
		return "", "", ErrNotProfiling
	}

	pprof.StopCPUProfile()
	trace.Stop()
	p.isProfiling = false

	cpuPath, tracePath = p.cpuFile.Name(), p.traceFile.Name()
	if cerr := p.cpuFile.Close(); cerr != nil {
		err = fmt.Errorf("failed to close profile file: %w", cerr)
	}
	if terr := p.traceFile.Close(); terr != nil && err == nil {
		err = fmt.Errorf("failed to close trace file: %w", terr)
	}
	p.cpuFile, p.traceFile = nil, nil

	p.analyze(cpuPath)
	return cpuPath, tracePath, err
}

// IsProfiling returns whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

// analyze logs where the profile went and the memory stats at the end of the run
func (p *Profiler) analyze(profilePath string) {
	info, err := os.Stat(profilePath)
	if err != nil {
		p.log.Printf("could not analyze profile: %v", err)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	p.log.Printf("%s: profile %s (%.2f KB)", p.baseName, profilePath, float64(info.Size())/1024)
	p.log.Printf("view with: go tool pprof -http=:8080 %s", profilePath)
	p.log.Printf("alloc=%dKB total=%dKB sys=%dKB gc=%d heapObjects=%d",
		m.Alloc/1024, m.TotalAlloc/1024, m.Sys/1024, m.NumGC, m.HeapObjects)
}
