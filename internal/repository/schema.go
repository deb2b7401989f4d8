package repository

const schema = `
CREATE TABLE IF NOT EXISTS links (
	slug       TEXT PRIMARY KEY,
	url        TEXT NOT NULL,
	status     SMALLINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	expires_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS links_expires_at_idx ON links (expires_at);

CREATE TABLE IF NOT EXISTS http_metrics (
	time        TIMESTAMPTZ NOT NULL,
	method      TEXT NOT NULL,
	path        TEXT NOT NULL,
	status_code INTEGER NOT NULL,
	duration_ms DOUBLE PRECISION NOT NULL,
	client_ip   TEXT NOT NULL,
	error       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS infra_metrics (
	time            TIMESTAMPTZ NOT NULL,
	pool_acquired   INTEGER NOT NULL,
	pool_idle       INTEGER NOT NULL,
	pool_total      INTEGER NOT NULL,
	pool_max        INTEGER NOT NULL,
	cache_hits      BIGINT NOT NULL,
	cache_misses    BIGINT NOT NULL,
	cache_hit_ratio DOUBLE PRECISION NOT NULL,
	goroutines      INTEGER NOT NULL,
	heap_alloc_mb   DOUBLE PRECISION NOT NULL
);
`
