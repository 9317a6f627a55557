package input

import (
	"fmt"
	"strings"
)

// Button is a single handheld key bit
// Bit order follows the handheld key register: A B Select Start Right Left Up Down R L, then X Y
type Button uint16

const (
	ButtonA Button = 1 << iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonRight
	ButtonLeft
	ButtonUp
	ButtonDown
	ButtonR
	ButtonL
	ButtonX
	ButtonY
	buttonEnd
)

// ButtonSet is an immutable snapshot of pressed buttons
type ButtonSet uint16

// AllButtons masks every defined button bit
const AllButtons = ButtonSet(buttonEnd - 1)

var buttonNames = [...]struct {
	b    Button
	name string
}{
	{ButtonA, "A"},
	{ButtonB, "B"},
	{ButtonSelect, "Select"},
	{ButtonStart, "Start"},
	{ButtonRight, "Right"},
	{ButtonLeft, "Left"},
	{ButtonUp, "Up"},
	{ButtonDown, "Down"},
	{ButtonR, "R"},
	{ButtonL, "L"},
	{ButtonX, "X"},
	{ButtonY, "Y"},
}

// Buttons builds a set from individual buttons
func Buttons(bs ...Button) ButtonSet {
	var s ButtonSet
	for _, b := range bs {
		s |= ButtonSet(b)
	}
	return s
}

// Has reports whether b is in the set
func (s ButtonSet) Has(b Button) bool {
	return s&ButtonSet(b) != 0
}

// With returns the set plus b
func (s ButtonSet) With(b Button) ButtonSet {
	return s | ButtonSet(b)
}

// Without returns the set minus b
func (s ButtonSet) Without(b Button) ButtonSet {
	return s &^ ButtonSet(b)
}

// Empty reports whether no button is set
func (s ButtonSet) Empty() bool {
	return s&AllButtons == 0
}

func (s ButtonSet) String() string {
	if s.Empty() {
		return "none"
	}
	var sb strings.Builder
	for _, bn := range buttonNames {
		if s.Has(bn.b) {
			if sb.Len() > 0 {
				sb.WriteByte('+')
			}
			sb.WriteString(bn.name)
		}
	}
	return sb.String()
}

func (b Button) String() string {
	for _, bn := range buttonNames {
		if bn.b == b {
			return bn.name
		}
	}
	return fmt.Sprintf("Button(%#x)", uint16(b))
}

// ParseButton resolves a case-insensitive button name
func ParseButton(name string) (Button, error) {
	for _, bn := range buttonNames {
		if strings.EqualFold(bn.name, name) {
			return bn.b, nil
		}
	}
	return 0, fmt.Errorf("unknown button %q", name)
}
