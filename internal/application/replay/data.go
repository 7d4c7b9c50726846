package replay

import "github.com/younwookim/runner/internal/domain/entity"

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameInput records the consumed input intent for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	MX float64 `json:"mx,omitempty"` // MoveAxis
	JP bool    `json:"jp,omitempty"` // JumpPressed
	JH bool    `json:"jh,omitempty"` // JumpHeld
	JR bool    `json:"jr,omitempty"` // JumpReleased
	BP bool    `json:"bp,omitempty"` // BrakePressed
	BR bool    `json:"br,omitempty"` // BrakeReleased
	B  bool    `json:"b,omitempty"`  // Braking
}

// NewFrameInput converts an intent into its recorded form
func NewFrameInput(frame int, in entity.InputIntent) FrameInput {
	return FrameInput{
		F:  frame,
		MX: in.MoveAxis,
		JP: in.JumpPressed,
		JH: in.JumpHeld,
		JR: in.JumpReleased,
		BP: in.BrakePressed,
		BR: in.BrakeReleased,
		B:  in.Braking,
	}
}

// Intent returns the recorded intent
func (fi FrameInput) Intent() entity.InputIntent {
	return entity.InputIntent{
		MoveAxis:      fi.MX,
		JumpPressed:   fi.JP,
		JumpHeld:      fi.JH,
		JumpReleased:  fi.JR,
		BrakePressed:  fi.BP,
		BrakeReleased: fi.BR,
		Braking:       fi.B,
	}
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	DT        float64      `json:"dt"` // real seconds per frame
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
