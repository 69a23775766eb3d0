// Package store 持久化终端界面的表单内容
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"slate/internal/model"
)

// FormKey 表单存储使用的唯一键
const FormKey = "b2b-repurpose-form"

// FormStore 基于嵌入式SQLite的键值表
type FormStore struct {
	db *sql.DB
}

// NewFormStore 打开或创建path处的数据库
func NewFormStore(path string) (*FormStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	const schema = `CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}

	return &FormStore{db: db}, nil
}

// Load 读取已保存的表单，记录不存在或无法解析时返回空表单，只有数据库错误才返回error
func (s *FormStore) Load(ctx context.Context) (model.RepurposeRequest, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, FormKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return model.RepurposeRequest{}, nil
	}
	if err != nil {
		return model.RepurposeRequest{}, fmt.Errorf("load form: %w", err)
	}

	var form model.RepurposeRequest
	if err := json.Unmarshal([]byte(raw), &form); err != nil {
		logrus.WithError(err).Debug("discarding unparsable saved form")
		return model.RepurposeRequest{}, nil
	}
	return form, nil
}

// Save 用完整的四个字段覆盖已保存的表单
func (s *FormStore) Save(ctx context.Context, form model.RepurposeRequest) error {
	b, err := json.Marshal(form)
	if err != nil {
		return err
	}
	return s.put(ctx, string(b))
}

func (s *FormStore) put(ctx context.Context, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		FormKey, value)
	if err != nil {
		return fmt.Errorf("save form: %w", err)
	}
	return nil
}

func (s *FormStore) Close() error {
	return s.db.Close()
}
