package database

// day, slot, repeat хранятся числами (repeat: Odd=1, Even=2, Both=3),
// группа - строкой вида "K-25"
var schemas = map[string]string{
	"postgres": `
	CREATE TABLE IF NOT EXISTS subjects (
		id       BIGINT PRIMARY KEY,
		title    TEXT NOT NULL,
		gang     TEXT NOT NULL,
		optional BOOLEAN NOT NULL DEFAULT FALSE
	);
	CREATE TABLE IF NOT EXISTS schedule (
		id         BIGSERIAL PRIMARY KEY,
		day        SMALLINT NOT NULL,
		repeat     SMALLINT NOT NULL,
		slot       SMALLINT NOT NULL,
		subject_id BIGINT NOT NULL REFERENCES subjects(id)
	);
	CREATE INDEX IF NOT EXISTS idx_schedule_day_slot ON schedule(day, slot);
	CREATE TABLE IF NOT EXISTS meetings (
		id   BIGINT PRIMARY KEY,
		name TEXT NOT NULL,
		gang TEXT NOT NULL,
		link TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS assigned (
		meeting_id BIGINT NOT NULL REFERENCES meetings(id),
		subject_id BIGINT NOT NULL REFERENCES subjects(id),
		PRIMARY KEY (meeting_id, subject_id)
	);
	CREATE TABLE IF NOT EXISTS users (
		chat_id BIGINT PRIMARY KEY,
		gang    TEXT NOT NULL
	);`,

	"sqlite": `
	CREATE TABLE IF NOT EXISTS subjects (
		id       INTEGER PRIMARY KEY,
		title    TEXT NOT NULL,
		gang     TEXT NOT NULL,
		optional BOOLEAN NOT NULL DEFAULT 0
	);
	CREATE TABLE IF NOT EXISTS schedule (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		day        INTEGER NOT NULL,
		repeat     INTEGER NOT NULL,
		slot       INTEGER NOT NULL,
		subject_id INTEGER NOT NULL REFERENCES subjects(id)
	);
	CREATE INDEX IF NOT EXISTS idx_schedule_day_slot ON schedule(day, slot);
	CREATE TABLE IF NOT EXISTS meetings (
		id   INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		gang TEXT NOT NULL,
		link TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS assigned (
		meeting_id INTEGER NOT NULL REFERENCES meetings(id),
		subject_id INTEGER NOT NULL REFERENCES subjects(id),
		PRIMARY KEY (meeting_id, subject_id)
	);
	CREATE TABLE IF NOT EXISTS users (
		chat_id INTEGER PRIMARY KEY,
		gang    TEXT NOT NULL
	);`,
}
