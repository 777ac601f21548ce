package booking

import "github.com/avlebedev/SBS-BookingWeb/pkg/dbtx"

// DBExecutor интерфейс для работы с БД (поддерживает *sql.DB и *sql.Tx)
type DBExecutor = dbtx.Executor
