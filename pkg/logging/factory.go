package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

type ComponentType string

const (
	ComponentTypeService   ComponentType = "service"
	ComponentTypeHandler   ComponentType = "handler"
	ComponentTypeServer    ComponentType = "server"
	ComponentTypeClient    ComponentType = "client"
	ComponentTypeWorkflow  ComponentType = "workflow"
	ComponentTypeProcessor ComponentType = "processor"
)

// Factory provides component-aware loggers with consistent field naming.
type Factory struct {
	baseLogger *log.Logger

	mu     sync.RWMutex
	levels map[string]log.Level
}

// NewFactory creates a new logger factory. Per-component levels are read
// from LOG_LEVEL_<COMPONENT> where the component id is upper-cased and
// dashes become underscores.
func NewFactory(baseLogger *log.Logger) *Factory {
	return &Factory{
		baseLogger: baseLogger,
		levels:     make(map[string]log.Level),
	}
}

func (lf *Factory) ForService(id string) *log.Logger {
	return lf.forComponent(id, ComponentTypeService)
}

func (lf *Factory) ForHandler(id string) *log.Logger {
	return lf.forComponent(id, ComponentTypeHandler)
}

func (lf *Factory) ForServer(id string) *log.Logger {
	return lf.forComponent(id, ComponentTypeServer)
}

func (lf *Factory) ForClient(id string) *log.Logger {
	return lf.forComponent(id, ComponentTypeClient)
}

func (lf *Factory) ForWorkflow(id string) *log.Logger {
	return lf.forComponent(id, ComponentTypeWorkflow)
}

func (lf *Factory) ForProcessor(id string) *log.Logger {
	return lf.forComponent(id, ComponentTypeProcessor)
}

// WithRequestID adds request correlation ID to a logger.
func (lf *Factory) WithRequestID(logger *log.Logger, requestID string) *log.Logger {
	return logger.With("request_id", requestID)
}

// SetComponentLogLevel overrides the level for one component.
func (lf *Factory) SetComponentLogLevel(id string, level log.Level) {
	lf.mu.Lock()
	defer lf.mu.Unlock()
	lf.levels[id] = level
}

func (lf *Factory) forComponent(id string, componentType ComponentType) *log.Logger {
	logger := lf.baseLogger.With("component", id, "component_type", string(componentType))
	logger.SetLevel(lf.levelFor(id))
	return logger
}

func (lf *Factory) levelFor(id string) log.Level {
	lf.mu.RLock()
	level, ok := lf.levels[id]
	lf.mu.RUnlock()
	if ok {
		return level
	}

	if value := os.Getenv(envKey(id)); value != "" {
		return ParseLevel(value)
	}
	return lf.baseLogger.GetLevel()
}

func envKey(id string) string {
	return "LOG_LEVEL_" + strings.ToUpper(strings.ReplaceAll(id, "-", "_"))
}
