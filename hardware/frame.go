// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package hardware

import (
	"fmt"

	"github.com/gophernes/gophernes/curated"
	"github.com/gophernes/gophernes/hardware/clocks"
	"github.com/gophernes/gophernes/logger"
)

// FrameFault is returned by StepFrame() when an error occurs during the
// frame. The wrapped error can be found with curated.Has().
const FrameFault = "nes: fault in frame %d: %v"

// Frame records the details of a single call to StepFrame().
type Frame struct {
	// number of cycles the frame was meant to run for
	Budget int

	// number of cycles actually run. the last instruction of a frame may
	// take the count past the budget
	Cycles int

	// number of instructions completed
	Instructions int
}

func (f Frame) String() string {
	return fmt.Sprintf("%d/%d cycles, %d instructions", f.Cycles, f.Budget, f.Instructions)
}

// StepFrame runs the CPU for one frame's worth of cycles. Frames alternate
// between the even and odd frame budgets, starting with an even frame after a
// successful cartridge attach. Cycles used beyond the budget are not carried
// into the next frame.
//
// Nothing happens if no cartridge is attached.
//
// On error the frame stops and the error is wrapped as a FrameFault. The
// NES remains usable and the next call starts a new frame at the current PC.
func (nes *NES) StepFrame() error {
	if !nes.IsActive() {
		return nil
	}

	nes.LastFrame = Frame{
		Budget: clocks.FrameBudget(nes.oddFrame),
	}

	defer func() {
		nes.oddFrame = !nes.oddFrame
		nes.FrameNum++
	}()

	cycleCallback := func() error {
		nes.LastFrame.Cycles++
		return nil
	}

	for nes.LastFrame.Cycles < nes.LastFrame.Budget {
		err := nes.CPU.ExecuteInstruction(cycleCallback)
		if err != nil {
			logger.Logf(nes, "nes", "frame %d: %v", nes.FrameNum, err)
			return curated.Errorf(FrameFault, nes.FrameNum, err)
		}
		nes.LastFrame.Instructions++
	}

	return nil
}

// RunForFrameCount calls StepFrame() the specified number of times. The
// continueCheck function is called after every frame and can be used to end
// the run early by returning false. It can be nil.
func (nes *NES) RunForFrameCount(numFrames int, continueCheck func(frame int) (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func(_ int) (bool, error) { return true, nil }
	}

	for i := 0; i < numFrames; i++ {
		err := nes.StepFrame()
		if err != nil {
			return err
		}

		cont, err := continueCheck(i)
		if err != nil {
			return err
		}
		if !cont {
			break
		}
	}

	return nil
}
