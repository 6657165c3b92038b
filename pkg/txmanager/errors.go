package txmanager

import "errors"

// ErrTransaction возвращается при ошибках начала, фиксации или отката транзакции
var ErrTransaction = errors.New("txmanager: transaction error")
