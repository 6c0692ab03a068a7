package database

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
)

// Tipos puente para las columnas json/jsonb. Los repos escanean y valoran
// a través de ellos para no repetir el marshal en cada consulta.

type stringList []string

func (l *stringList) Scan(src any) error {
	if src == nil {
		*l = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("stringList: tipo inesperado %T", src)
}

func (l stringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

type jsonMap map[string]any

func (m *jsonMap) Scan(src any) error {
	if src == nil {
		*m = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	}
	return fmt.Errorf("jsonMap: tipo inesperado %T", src)
}

func (m jsonMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(map[string]any(m))
}

// rowScanner cubre *sql.Row y *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// setClause construye "col = $n, ..." recorriendo columns en orden fijo y
// saltando lo que el patch no trae, para que la query sea determinista.
func setClause(patch entity.Patch, columns []string) (string, []any) {
	var parts []string
	var args []any
	for _, col := range columns {
		v, ok := patch[col]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case []string:
			v = stringList(t)
		case map[string]any:
			v = jsonMap(t)
		}
		args = append(args, v)
		parts = append(parts, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	return strings.Join(parts, ", "), args
}
