package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"fleet/internal/domain"
)

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationTripActivated     NotificationType = "TRIP_ACTIVATED"
	NotificationTripCompleted     NotificationType = "TRIP_COMPLETED"
	NotificationTripCanceled      NotificationType = "TRIP_CANCELED"
	NotificationMaintenanceOpened NotificationType = "MAINTENANCE_OPENED"
	NotificationMaintenanceClosed NotificationType = "MAINTENANCE_CLOSED"
)

// Notification represents a notification to be delivered.
type Notification struct {
	Type        NotificationType
	RecipientID string
	Title       string
	Message     string
	Data        map[string]interface{}
	CreatedAt   time.Time
}

// NotificationService handles notification delivery. Delivery transport
// (push, SMS, websocket) lives outside this core; notifications are logged.
type NotificationService struct{}

// NewNotificationService creates a new NotificationService.
func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyTripActivated tells the driver their trip is underway.
func (s *NotificationService) NotifyTripActivated(ctx context.Context, trip *domain.Trip) error {
	return s.send(ctx, Notification{
		Type:        NotificationTripActivated,
		RecipientID: trip.DriverID,
		Title:       "Trip Started",
		Message:     fmt.Sprintf("Trip %s to %s is now active", trip.ID, trip.EndLocation),
		Data: map[string]interface{}{
			"trip_id":  trip.ID,
			"truck_id": trip.TruckID,
		},
		CreatedAt: time.Now(),
	})
}

// NotifyTripCompleted tells the driver their trip is done.
func (s *NotificationService) NotifyTripCompleted(ctx context.Context, trip *domain.Trip) error {
	return s.send(ctx, Notification{
		Type:        NotificationTripCompleted,
		RecipientID: trip.DriverID,
		Title:       "Trip Completed",
		Message:     fmt.Sprintf("Trip %s completed, %.0f km driven", trip.ID, trip.DistanceKm),
		Data: map[string]interface{}{
			"trip_id":     trip.ID,
			"distance_km": trip.DistanceKm,
		},
		CreatedAt: time.Now(),
	})
}

// NotifyTripCanceled tells the driver their trip was canceled.
func (s *NotificationService) NotifyTripCanceled(ctx context.Context, trip *domain.Trip) error {
	return s.send(ctx, Notification{
		Type:        NotificationTripCanceled,
		RecipientID: trip.DriverID,
		Title:       "Trip Canceled",
		Message:     fmt.Sprintf("Trip %s has been canceled", trip.ID),
		Data: map[string]interface{}{
			"trip_id": trip.ID,
		},
		CreatedAt: time.Now(),
	})
}

// NotifyMaintenanceOpened announces a vehicle entering the shop.
func (s *NotificationService) NotifyMaintenanceOpened(ctx context.Context, m *domain.Maintenance) error {
	return s.send(ctx, Notification{
		Type:        NotificationMaintenanceOpened,
		RecipientID: m.VehicleID,
		Title:       "Maintenance Opened",
		Message:     fmt.Sprintf("Vehicle %s entered maintenance (%s)", m.VehicleID, m.Component),
		Data: map[string]interface{}{
			"maintenance_id": m.ID,
			"component":      m.Component,
		},
		CreatedAt: time.Now(),
	})
}

// NotifyMaintenanceClosed announces a maintenance record reaching a terminal
// state.
func (s *NotificationService) NotifyMaintenanceClosed(ctx context.Context, m *domain.Maintenance) error {
	return s.send(ctx, Notification{
		Type:        NotificationMaintenanceClosed,
		RecipientID: m.VehicleID,
		Title:       "Maintenance Closed",
		Message:     fmt.Sprintf("Maintenance %s on vehicle %s is %s", m.ID, m.VehicleID, m.Status),
		Data: map[string]interface{}{
			"maintenance_id": m.ID,
			"status":         string(m.Status),
		},
		CreatedAt: time.Now(),
	})
}

// send delivers the notification. Currently logs; a push/SMS/websocket
// client would plug in here.
func (s *NotificationService) send(_ context.Context, n Notification) error {
	log.Printf("[NOTIFICATION] type=%s recipient=%s title=%q message=%q", n.Type, n.RecipientID, n.Title, n.Message)
	return nil
}
