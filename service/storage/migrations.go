package storage

const schemaV1 = `
CREATE TABLE IF NOT EXISTS runs (
    run_id           INTEGER PRIMARY KEY AUTOINCREMENT,
    run_uuid         TEXT UNIQUE NOT NULL,
    tag              TEXT NOT NULL,
    tag_version      TEXT NOT NULL,
    manifest_path    TEXT,
    manifest_version TEXT,
    module_path      TEXT,
    module_version   TEXT,
    docs_mentioned   INTEGER DEFAULT 0,
    mismatch_count   INTEGER DEFAULT 0,
    passed           INTEGER DEFAULT 0,
    cli_version      TEXT,
    run_timestamp    DATETIME DEFAULT CURRENT_TIMESTAMP,
    created_at       DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_runs_timestamp
    ON runs(run_timestamp DESC);
CREATE INDEX IF NOT EXISTS idx_runs_tag
    ON runs(tag, run_timestamp);
`
