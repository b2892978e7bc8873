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

package pipeline

// OrDone reads from the in channel until it closes or done is signalled,
// whichever happens first.
func OrDone[D, T any](done <-chan D, in <-chan T) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		for {
			select {
			case <-done:
				return
			case item, ok := <-in:
				if !ok {
					return
				}
				select {
				case out <- item:
				case <-done:
					return
				}
			}
		}
	}()
	return out
}

// Send submits an item to the out channel, aborting if done is signalled.
// Returns false when the send was abandoned.
func Send[D, T any](done <-chan D, out chan<- T, item T) bool {
	select {
	case out <- item:
		return true
	case <-done:
		return false
	}
}

// SendAny is Send for untyped channels.
func SendAny[D any](done <-chan D, out chan<- any, item any) bool {
	select {
	case out <- item:
		return true
	case <-done:
		return false
	}
}
