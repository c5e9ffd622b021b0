package journal

import (
	"database/sql"
	"fmt"
	"time"
)

const entryColumns = "id, run_id, track, source_path, map_path, status, reason, data_size, intro_bytes, loop_bytes, outro_bytes, created_at"

func scanEntry(scanner interface{ Scan(dest ...any) error }) (Entry, error) {
	var (
		entry      Entry
		mapPath    sql.NullString
		reason     sql.NullString
		statusStr  string
		createdRaw string
	)
	if err := scanner.Scan(
		&entry.ID,
		&entry.RunID,
		&entry.Track,
		&entry.SourcePath,
		&mapPath,
		&statusStr,
		&reason,
		&entry.DataSize,
		&entry.IntroBytes,
		&entry.LoopBytes,
		&entry.OutroBytes,
		&createdRaw,
	); err != nil {
		return Entry{}, fmt.Errorf("scan entry: %w", err)
	}
	entry.MapPath = mapPath.String
	entry.Reason = reason.String
	entry.Status = Status(statusStr)
	entry.CreatedAt = parseTimestamp(createdRaw)
	return entry, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func parseTimestamp(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return ts
	}
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts
	}
	return time.Time{}
}
