package convert

import "fmt"

// ProgressUpdate represents a progress event during a conversion run.
//
// Used to send real-time updates to the CLI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Pipeline stage
	Step    int    // Current step number within the stage
	Total   int    // Total steps in this stage, 0 when unknown
	Message string // Human-readable message for display
}

// Pipeline stage enumeration, in execution order.
type Phase int

const (
	EmitTeam Phase = iota
	ConvertEmojis
	ConvertRooms
	ConvertUsers
	ConvertPosts
	DiscoverDirectChannels
	ConvertDirectPosts
)

func (p Phase) String() string {
	switch p {
	case EmitTeam:
		return "emit_team"
	case ConvertEmojis:
		return "convert_emojis"
	case ConvertRooms:
		return "convert_rooms"
	case ConvertUsers:
		return "convert_users"
	case ConvertPosts:
		return "convert_posts"
	case DiscoverDirectChannels:
		return "discover_direct_channels"
	case ConvertDirectPosts:
		return "convert_direct_posts"
	default:
		return "unknown"
	}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default so progress reporting never stalls the pipeline.
func (e *Engine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full, skip this update
	}
}

func stageUpdate(phase Phase, step, total int, format string, args ...any) ProgressUpdate {
	return ProgressUpdate{
		Phase:   phase,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf(format, args...),
	}
}
