package models

import (
	"time"

	"github.com/selebrow/dbquota/pkg/models"
)

var now = time.Now

const (
	TenantMeasuredEventType    = "TenantMeasured"
	QuotaStateChangedEventType = "QuotaStateChanged"
	CycleCompletedEventType    = "CycleCompleted"
)

type TenantMeasured struct {
	CycleID string
	Tenant  models.Tenant
	Size    int64
	Limit   int64
}

type QuotaStateChanged struct {
	CycleID string
	Tenant  models.Tenant
	Size    int64
	Limit   int64
	From    models.QuotaState
	To      models.QuotaState
}

type CycleCompleted struct {
	Report models.CycleReport
	// Tenants lists every tenant processed by the cycle, it is complete only when cycle succeeded
	Tenants []string
}

func NewTenantMeasuredEvent(m TenantMeasured) *Event[TenantMeasured] {
	return NewEvent(TenantMeasuredEventType, now(), m)
}

func NewQuotaStateChangedEvent(c QuotaStateChanged) *Event[QuotaStateChanged] {
	return NewEvent(QuotaStateChangedEventType, now(), c)
}

func NewCycleCompletedEvent(c CycleCompleted) *Event[CycleCompleted] {
	return NewEvent(CycleCompletedEventType, now(), c)
}

// IEvent is implemented by every event published via broker.
type IEvent interface {
	EventTime() time.Time
	EventType() string
}

type Event[T any] struct {
	eventTime  time.Time
	eventType  string
	Attributes T
}

func (e *Event[T]) EventTime() time.Time {
	return e.eventTime
}

func (e *Event[T]) EventType() string {
	return e.eventType
}

func NewEvent[T any](eventType string, evTime time.Time, attributes T) *Event[T] {
	return &Event[T]{
		eventTime:  evTime,
		eventType:  eventType,
		Attributes: attributes,
	}
}
