package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"resto_dev_v1_202608/internal/model"
)

// normalizeID 去两端空白并校验定长主键
func normalizeID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", fmt.Errorf("%w: 主键不能为空", ErrBadRequest)
	}
	if len(id) > model.IDLength {
		return "", fmt.Errorf("%w: 主键超长 %q", ErrBadRequest, id)
	}
	return id, nil
}

// notFoundOr 把 gorm 的未命中翻译成 ErrNotFound，其余原样抛出
func notFoundOr(err error, entity, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s %s", ErrNotFound, entity, id)
	}
	return err
}

// writeErr 把数据库层的约束冲突翻译成 ErrConflict
func writeErr(err error, entity, id string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s %s 违反唯一约束", ErrConflict, entity, id)
	}
	return err
}
