package storage

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestWhereRendersSensorAndTimeRange(t *testing.T) {
	is := is.New(t)

	from, _ := time.Parse(time.RFC3339, "2024-06-01T00:00:00Z")
	to, _ := time.Parse(time.RFC3339, "2024-06-02T00:00:00Z")

	c := &Condition{}
	for _, f := range []ConditionFunc{WithSensorID("TEMP001"), WithTimeRange(from, to)} {
		f(c)
	}

	is.Equal(c.Where("time"), "1=1 AND sensor_id = @sensor_id AND time >= @time_from AND time <= @time_to")

	args := c.NamedArgs()
	is.Equal(args["sensor_id"], "TEMP001")
	is.Equal(args["time_from"], from.UTC())
}

func TestWhereWithNoConditionsMatchesEverything(t *testing.T) {
	is := is.New(t)

	c := &Condition{}
	is.Equal(c.Where("time"), "1=1")
	is.Equal(len(c.NamedArgs()), 0)
}

func TestTypeConditions(t *testing.T) {
	is := is.New(t)

	c := &Condition{}
	WithTypes([]string{"temperature"})(c)
	is.Equal(c.Where("time"), "1=1 AND type = @type")

	c = &Condition{}
	WithTypes([]string{"temperature", "humidity"})(c)
	is.Equal(c.Where("time"), "1=1 AND type = ANY(@types)")
}

func TestMapToConditions(t *testing.T) {
	is := is.New(t)

	conditions := MapToConditions(map[string][]string{
		"sensor_id": {"TEMP001"},
		"status":    {"online"},
		"limit":     {"10"},
		"offset":    {"20"},
		"sortorder": {"DESC"},
	})

	c := &Condition{}
	for _, f := range conditions {
		f(c)
	}

	is.Equal(c.SensorID, "TEMP001")
	is.Equal(c.Status, "online")
	is.Equal(c.Limit(), 10)
	is.Equal(c.Offset(), 20)
	is.Equal(c.SortOrder(), "DESC")
}

func TestDefaultOffsetLimit(t *testing.T) {
	is := is.New(t)

	c := &Condition{}
	is.Equal(c.Offset(), 0)
	is.Equal(c.Limit(), 1000)
	is.Equal(c.SortBy("time"), "time")
	is.Equal(c.SortOrder(), "ASC")
}
