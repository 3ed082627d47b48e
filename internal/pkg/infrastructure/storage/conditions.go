package storage

import (
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	SensorID string
	AlertID  string

	Types    []string
	Status   string
	Severity string

	TimeFrom time.Time
	TimeTo   time.Time

	sortBy    string
	sortOrder string

	offset *int
	limit  *int
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.SensorID != "" {
		args["sensor_id"] = c.SensorID
	}
	if c.AlertID != "" {
		args["alert_id"] = c.AlertID
	}
	if len(c.Types) == 1 {
		args["type"] = c.Types[0]
	}
	if len(c.Types) > 1 {
		args["types"] = c.Types
	}
	if c.Status != "" {
		args["status"] = c.Status
	}
	if c.Severity != "" {
		args["severity"] = c.Severity
	}
	if !c.TimeFrom.IsZero() {
		args["time_from"] = c.TimeFrom.UTC()
	}
	if !c.TimeTo.IsZero() {
		args["time_to"] = c.TimeTo.UTC()
	}

	return args
}

// Where renders the accumulated conditions for a given table's column
// naming. Time columns differ between tables, so the caller passes the
// column holding the observation time.
func (c Condition) Where(timeColumn string) string {
	where := []string{"1=1"}

	if c.SensorID != "" {
		where = append(where, "sensor_id = @sensor_id")
	}
	if c.AlertID != "" {
		where = append(where, "alert_id = @alert_id")
	}
	if len(c.Types) == 1 {
		where = append(where, "type = @type")
	}
	if len(c.Types) > 1 {
		where = append(where, "type = ANY(@types)")
	}
	if c.Status != "" {
		where = append(where, "status = @status")
	}
	if c.Severity != "" {
		where = append(where, "severity = @severity")
	}
	if !c.TimeFrom.IsZero() {
		where = append(where, timeColumn+" >= @time_from")
	}
	if !c.TimeTo.IsZero() {
		where = append(where, timeColumn+" <= @time_to")
	}

	return strings.Join(where, " AND ")
}

func (c Condition) SortBy(def string) string {
	if c.sortBy == "" {
		return def
	}
	return c.sortBy
}

func (c Condition) SortOrder() string {
	if strings.EqualFold(c.sortOrder, "desc") {
		return "DESC"
	}
	return "ASC"
}

func (c Condition) Offset() int {
	if c.offset == nil {
		return 0
	}
	return *c.offset
}

func (c Condition) Limit() int {
	if c.limit == nil {
		return 1000
	}
	return *c.limit
}

func WithSensorID(sensorID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.SensorID = sensorID
		return c
	}
}

func WithAlertID(alertID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AlertID = alertID
		return c
	}
}

func WithTypes(types []string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Types = types
		return c
	}
}

func WithStatus(status string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Status = status
		return c
	}
}

func WithSeverity(severity string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Severity = severity
		return c
	}
}

func WithTimeRange(from, to time.Time) ConditionFunc {
	return func(c *Condition) *Condition {
		c.TimeFrom = from
		c.TimeTo = to
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}

func WithSortBy(sortBy string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.sortBy = sortBy
		return c
	}
}

func WithSortDesc(desc bool) ConditionFunc {
	return func(c *Condition) *Condition {
		if desc {
			c.sortOrder = "desc"
		} else {
			c.sortOrder = "asc"
		}
		return c
	}
}

// MapToConditions translates HTTP query parameters into conditions.
func MapToConditions(params map[string][]string) []ConditionFunc {
	conditions := make([]ConditionFunc, 0)

	for k, v := range params {
		if len(v) == 0 {
			continue
		}
		switch strings.ToLower(k) {
		case "sensor_id":
			conditions = append(conditions, WithSensorID(v[0]))
		case "type", "types":
			conditions = append(conditions, WithTypes(v))
		case "status":
			conditions = append(conditions, WithStatus(v[0]))
		case "severity":
			conditions = append(conditions, WithSeverity(v[0]))
		case "from":
			if t, err := time.Parse(time.RFC3339, v[0]); err == nil {
				conditions = append(conditions, func(c *Condition) *Condition {
					c.TimeFrom = t
					return c
				})
			}
		case "to":
			if t, err := time.Parse(time.RFC3339, v[0]); err == nil {
				conditions = append(conditions, func(c *Condition) *Condition {
					c.TimeTo = t
					return c
				})
			}
		case "limit":
			if limit, err := strconv.Atoi(v[0]); err == nil {
				conditions = append(conditions, WithLimit(limit))
			}
		case "offset":
			if offset, err := strconv.Atoi(v[0]); err == nil {
				conditions = append(conditions, WithOffset(offset))
			}
		case "sortby":
			conditions = append(conditions, WithSortBy(v[0]))
		case "sortorder":
			conditions = append(conditions, WithSortDesc(strings.EqualFold(v[0], "desc")))
		}
	}

	return conditions
}
