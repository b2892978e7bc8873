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

package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/consenthound/consenthound/models"
)

// Sink serializes classified grant records. Records arrive in collection
// order and are written in that order.
type Sink interface {
	Write(record models.GrantRecord) error
	Flush() error
}

func NewSink(format string, out io.Writer) (Sink, error) {
	switch format {
	case "", "json":
		return &jsonSink{encoder: json.NewEncoder(out)}, nil
	case "csv":
		return newCSVSink(out), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// jsonSink emits one JSON object per line.
type jsonSink struct {
	encoder *json.Encoder
}

func (s *jsonSink) Write(record models.GrantRecord) error {
	return s.encoder.Encode(record)
}

func (s *jsonSink) Flush() error { return nil }

var csvHeader = []string{
	"PermissionType",
	"ClientObjectId",
	"ClientDisplayName",
	"ResourceObjectId",
	"ResourceDisplayName",
	"Permission",
	"PrincipalObjectId",
	"PrincipalDisplayName",
	"MicrosoftRegisteredClientApp",
	"AppOwnerOrganizationId",
	"Privilege",
}

type csvSink struct {
	writer      *csv.Writer
	wroteHeader bool
}

func newCSVSink(out io.Writer) *csvSink {
	return &csvSink{writer: csv.NewWriter(out)}
}

func (s *csvSink) Write(record models.GrantRecord) error {
	if !s.wroteHeader {
		if err := s.writer.Write(csvHeader); err != nil {
			return err
		}
		s.wroteHeader = true
	}

	return s.writer.Write([]string{
		string(record.PermissionType),
		record.ClientObjectId,
		record.ClientDisplayName,
		record.ResourceObjectId,
		record.ResourceDisplayName,
		record.Permission,
		record.PrincipalObjectId,
		record.PrincipalDisplayName,
		strconv.FormatBool(record.MicrosoftRegisteredClientApp),
		record.AppOwnerOrganizationId,
		string(record.Privilege),
	})
}

func (s *csvSink) Flush() error {
	s.writer.Flush()
	return s.writer.Error()
}
