// ABOUTME: SQLite database schema for study history storage
// ABOUTME: Creates the exam attempts table and its indexes
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
-- Exam attempts table (one row per graded exam sitting)
CREATE TABLE IF NOT EXISTS exam_attempts (
    id TEXT PRIMARY KEY,
    topic TEXT NOT NULL,
    score REAL NOT NULL,
    correct_count INTEGER NOT NULL,
    total_questions INTEGER NOT NULL,
    taken_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_attempts_topic ON exam_attempts(topic);
CREATE INDEX IF NOT EXISTS idx_attempts_taken ON exam_attempts(taken_at);
`

// SchemaVersion is the current schema version for migrations
const SchemaVersion = 1
