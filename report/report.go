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

// Package report orchestrates a full audit run: load the classification
// table, collect grants, classify each record and hand the results to the
// output sink.
package report

import (
	"context"
	"fmt"
	"io"

	"github.com/go-logr/logr"

	"github.com/consenthound/consenthound/cache"
	"github.com/consenthound/consenthound/classify"
	"github.com/consenthound/consenthound/client"
	"github.com/consenthound/consenthound/collect"
)

type Options struct {
	// TablePath is a local permission table; the community default table is
	// downloaded when empty.
	TablePath string

	// ProxyUrl routes the table download when set.
	ProxyUrl string

	// Format selects the sink: "json" (default) or "csv".
	Format string
}

// Run executes the full report pipeline, writing classified records to out.
// Table load failures abort before any remote enumeration; a service
// principal enumeration failure aborts the remainder of the run.
func Run(ctx context.Context, azClient client.AzureClient, opts Options, out io.Writer, log logr.Logger) error {
	table, err := classify.LoadPermissionTable(ctx, opts.TablePath, opts.ProxyUrl)
	if err != nil {
		return fmt.Errorf("loading permission table: %w", err)
	}
	log.V(1).Info("permission table loaded", "rows", table.Len())

	sink, err := NewSink(opts.Format, out)
	if err != nil {
		return err
	}

	objects := cache.NewDirectoryObjectCache(azClient, log)
	collector := collect.NewCollector(azClient, objects, log)

	count := 0
	for item := range collector.Collect(ctx) {
		if item.Error != nil {
			return fmt.Errorf("collecting consent grants: %w", item.Error)
		}

		record := item.Ok
		record.Privilege = classify.Classify(record, table)

		if err := sink.Write(record); err != nil {
			return fmt.Errorf("writing report record: %w", err)
		}
		count++
	}

	if err := sink.Flush(); err != nil {
		return err
	}

	log.Info("report complete", "records", count, "cachedObjects", objects.Len())
	return ctx.Err()
}
