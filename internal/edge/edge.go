// Package edge packs edge detection control words and programs them into
// memory modules and memory tiles.
package edge

import (
	"fmt"

	"aietrace/internal/aie"
	"aietrace/internal/common"
)

// Edge detection control word layout.
const (
	event0Shift    = 0
	event0RiseBit  = 9
	event0FallBit  = 10
	event1Shift    = 16
	event1RiseBit  = 25
	event1FallBit  = 26
	MaxSourceEvent = 0xFF
)

// EdgeControl is the decoded content of an edge detection control register.
type EdgeControl struct {
	Event0     uint8
	Event0Rise bool
	Event0Fall bool
	Event1     uint8
	Event1Rise bool
	Event1Fall bool
}

func bit(set bool, pos uint) uint32 {
	if set {
		return 1 << pos
	}
	return 0
}

// Word packs the control register value.
func (c EdgeControl) Word() uint32 {
	return uint32(c.Event0)<<event0Shift |
		bit(c.Event0Rise, event0RiseBit) |
		bit(c.Event0Fall, event0FallBit) |
		uint32(c.Event1)<<event1Shift |
		bit(c.Event1Rise, event1RiseBit) |
		bit(c.Event1Fall, event1FallBit)
}

// Decode unpacks a control register value.
func Decode(w uint32) EdgeControl {
	return EdgeControl{
		Event0:     uint8(w >> event0Shift),
		Event0Rise: w&(1<<event0RiseBit) != 0,
		Event0Fall: w&(1<<event0FallBit) != 0,
		Event1:     uint8(w >> event1Shift),
		Event1Rise: w&(1<<event1RiseBit) != 0,
		Event1Fall: w&(1<<event1FallBit) != 0,
	}
}

// Policy fixes which edges are enabled. Both detectors watch the same source.
type Policy uint8

const (
	// PolicyRiseOnly enables the rising edge of detector 0.
	PolicyRiseOnly Policy = iota
	// PolicyRiseFall enables the rising edge of detector 0 and the falling
	// edge of detector 1, so one event marks both ends of a stall.
	PolicyRiseFall
)

func (p Policy) String() string {
	if p == PolicyRiseFall {
		return "rise-fall"
	}
	return "rise"
}

// Control returns the control register content for source event id.
func (p Policy) Control(id uint8) EdgeControl {
	return EdgeControl{
		Event0:     id,
		Event0Rise: true,
		Event1:     id,
		Event1Fall: p == PolicyRiseFall,
	}
}

// Encode packs the control word for eventID under policy. Event numbers wider
// than the 8 bit source fields are rejected.
func Encode(eventID uint32, policy Policy) (uint32, error) {
	if eventID > MaxSourceEvent {
		return 0, common.NewErrorMsg(aie.ErrSevError, aie.ErrEventRange, fmt.Sprintf("event %d", eventID))
	}
	return policy.Control(uint8(eventID)).Word(), nil
}
