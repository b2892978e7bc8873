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

package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/consenthound/consenthound/config"
	"github.com/consenthound/consenthound/enums"
	"github.com/consenthound/consenthound/pipeline"
)

// AzureWrapper tags streamed output items with their kind.
type AzureWrapper struct {
	Kind enums.Kind  `json:"kind"`
	Data interface{} `json:"data"`
}

type azureWrapper[T any] struct {
	Kind enums.Kind `json:"kind"`
	Data T          `json:"data"`
}

func NewAzureWrapper[T any](kind enums.Kind, data T) azureWrapper[T] {
	return azureWrapper[T]{Kind: kind, Data: data}
}

// openOutput returns the report destination: the configured output file, or
// stdout when none is set.
func openOutput() (io.WriteCloser, error) {
	path := config.OutputFile.Value().(string)
	if path == "" {
		return os.Stdout, nil
	}
	return os.Create(path)
}

// outputStream writes each streamed item as one JSON line to the configured
// destination.
func outputStream[T any](ctx context.Context, stream <-chan T) {
	out, err := openOutput()
	if err != nil {
		exit(err)
	}
	if out != os.Stdout {
		defer out.Close()
	}

	encoder := json.NewEncoder(out)
	for item := range pipeline.OrDone(ctx.Done(), stream) {
		if err := encoder.Encode(item); err != nil {
			log.Error(err, "unable to encode output item")
		}
	}
}
