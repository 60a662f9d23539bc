package executor_test

import (
	"testing"

	"github.com/eltorocorp/sqlinfer"
	"github.com/eltorocorp/sqlinfer/executor"
	"github.com/stretchr/testify/assert"
)

func sampleColumns() []sqlinfer.ColumnInfo {
	return []sqlinfer.ColumnInfo{
		{Name: "customer_id", SQLType: "BIGINT", NullPct: 0},
		{Name: "flag", SQLType: "BOOLEAN", NullPct: 0.1},
		{Name: "notes", SQLType: "LONGVARCHAR", NullPct: 0.2},
	}
}

func Test_CreateTableDDL_Postgres(t *testing.T) {
	ddl := executor.CreateTableDDL("customers", sampleColumns(), false, executor.Postgres)
	assert.Contains(t, ddl, `"customer_id" BIGINT`)
	assert.Contains(t, ddl, `"flag" BOOLEAN`)
	assert.Contains(t, ddl, `"notes" TEXT`)
	assert.Contains(t, ddl, `CREATE TABLE "customers"`)
}

func Test_CreateTableDDL_SQLServer(t *testing.T) {
	ddl := executor.CreateTableDDL("customers", sampleColumns(), false, executor.SQLServer)
	assert.Contains(t, ddl, `[customer_id] BIGINT`)
	assert.Contains(t, ddl, `[flag] BIT`)
	assert.Contains(t, ddl, `[notes] VARCHAR(MAX)`)
	assert.Contains(t, ddl, `CREATE TABLE [customers]`)
}

func Test_CreateTableDDL_Strict(t *testing.T) {
	ddl := executor.CreateTableDDL("customers", sampleColumns(), true, executor.Postgres)
	assert.Contains(t, ddl, `"customer_id" BIGINT NOT NULL`)
	assert.NotContains(t, ddl, `"flag" BOOLEAN NOT NULL`)
}
