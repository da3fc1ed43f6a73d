// Package storage provides the S3/MinIO client used by the backup command.
//
// The Client interface covers only what backups need (bucket check, bucket
// creation, object upload) so tests can substitute the mock in mocks/.
// Backup snapshots the SQLite database file into the configured bucket with
// a timestamped object name.
package storage
