package errors

import "errors"

// ErrStateConflict 条件更新冲突：记录状态已被其他操作推进，前置条件不再成立
var ErrStateConflict = errors.New("记录状态已变更，请刷新后重试")
