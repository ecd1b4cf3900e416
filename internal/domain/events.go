package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventAppReady        EventType = "AppReady"
	EventQueryChanged    EventType = "QueryChanged"
	EventHelpPagerClosed EventType = "HelpPagerClosed"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// AppReadyEvent is emitted once the UI has been initialized
type AppReadyEvent struct {
	RecordCount int
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }

// QueryChangedEvent is emitted after every filter step
type QueryChangedEvent struct {
	Query      string
	MatchCount int
	MatchIDs   []int
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// HelpPagerClosedEvent is emitted when the help pager returns control to the UI
type HelpPagerClosedEvent struct {
	Err error
}

func (e HelpPagerClosedEvent) Type() EventType { return EventHelpPagerClosed }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path     string
	LogLevel string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
