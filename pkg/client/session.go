package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// Session 当前登录态，显式传给需要它的组件，不放全局变量
type Session struct {
	User       map[string]any `json:"user"`
	LoggedInAt time.Time      `json:"loggedInAt"`
}

// LoadSession 从 JSON 文件读登录态，文件不存在视为未登录
func LoadSession(path string) (*Session, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save 写登录态到 JSON 文件
func (s *Session) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

// ClearSession 登出，删掉登录态文件
func ClearSession(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
