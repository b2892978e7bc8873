// Copyright (C) 2026 ConsentHound Contributors
//
// This file is part of ConsentHound.
//
// ConsentHound is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ConsentHound is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package panicrecovery

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/go-logr/logr"
)

var panicChan = make(chan error, 1)

// PanicRecovery must be deferred at the top of every producer goroutine so a
// panic in one stream surfaces as a shutdown instead of killing the process
// with half a report written.
func PanicRecovery() {
	if recovered := recover(); recovered != nil {
		select {
		case panicChan <- fmt.Errorf("%v\n%s", recovered, debug.Stack()):
		default:
		}
	}
}

// HandleBubbledPanic waits for a recovered panic and cancels the run when one
// arrives.
func HandleBubbledPanic(ctx context.Context, stop context.CancelFunc, log logr.Logger) {
	go func() {
		select {
		case err := <-panicChan:
			log.Error(err, "recovered from panic in worker goroutine, shutting down")
			stop()
		case <-ctx.Done():
		}
	}()
}
