package handler

import (
	"context"
	"sync"

	"cinema_booking/database"

	"github.com/gofiber/contrib/websocket"
)

var (
	seatClients = make(map[string]map[*websocket.Conn]bool)
	seatMu      sync.Mutex
)

// SeatWebsocket stream trạng thái giữ/nhả ghế của một suất chiếu.
// Mỗi kết nối subscribe kênh Redis seats:<showtimeId> và phát lại payload.
func SeatWebsocket(c *websocket.Conn) {
	showtimeId := c.Params("showtimeId")

	defer func() {
		seatMu.Lock()
		if seatClients[showtimeId] != nil {
			delete(seatClients[showtimeId], c)
		}
		seatMu.Unlock()
		c.Close()
	}()

	seatMu.Lock()
	if seatClients[showtimeId] == nil {
		seatClients[showtimeId] = make(map[*websocket.Conn]bool)
	}
	seatClients[showtimeId][c] = true
	seatMu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubsub := database.Redis.Subscribe(ctx, seatChannel(showtimeId))
	defer pubsub.Close()

	// Đọc từ client chỉ để phát hiện ngắt kết nối
	go func() {
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	for msg := range pubsub.Channel() {
		payload := []byte(msg.Payload)

		seatMu.Lock()
		for conn := range seatClients[showtimeId] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(seatClients[showtimeId], conn)
			}
		}
		seatMu.Unlock()
	}
}
