package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
)

const writeWait = 10 * time.Second

// ConnectionManager tracks the socket watching each match.
type ConnectionManager struct {
	connections map[string]*websocket.Conn

	// conn.WriteJSON is not safe for concurrent use; one writer per socket
	writeMu map[string]*sync.Mutex

	mu sync.RWMutex // guards the maps
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		connections: make(map[string]*websocket.Conn),
		writeMu:     make(map[string]*sync.Mutex),
	}
}

// AddConnection registers conn for matchID, closing any previous socket for
// the same match.
func (cm *ConnectionManager) AddConnection(matchID string, conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if oldConn, exists := cm.connections[matchID]; exists && oldConn != conn {
		oldConn.Close()
	}

	cm.connections[matchID] = conn
	cm.writeMu[matchID] = &sync.Mutex{}
}

func (cm *ConnectionManager) RemoveConnection(matchID string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if conn, exists := cm.connections[matchID]; exists {
		conn.Close()
		delete(cm.connections, matchID)
		delete(cm.writeMu, matchID)
	}
}

// RemoveConnectionIfMatching only removes conn if it is still the current
// socket for the match, so a reconnect is not torn down by the old reader.
func (cm *ConnectionManager) RemoveConnectionIfMatching(matchID string, conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if currentConn, exists := cm.connections[matchID]; exists && currentConn == conn {
		currentConn.Close()
		delete(cm.connections, matchID)
		delete(cm.writeMu, matchID)
	}
}

func (cm *ConnectionManager) IsCurrentConnection(matchID string, conn *websocket.Conn) bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	currentConn, exists := cm.connections[matchID]
	return exists && currentConn == conn
}

func (cm *ConnectionManager) Count() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.connections)
}

// SendMessage writes a JSON message to the match's socket. A match nobody
// watches is not an error.
func (cm *ConnectionManager) SendMessage(matchID string, message domain.ServerMessage) error {
	cm.mu.RLock()
	conn, exists := cm.connections[matchID]
	mu, muExists := cm.writeMu[matchID]
	cm.mu.RUnlock()

	if !exists || !muExists {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(message)
}

// Ping sends a keep-alive ping under the socket's write lock.
func (cm *ConnectionManager) Ping(matchID string, conn *websocket.Conn) error {
	cm.mu.RLock()
	mu, exists := cm.writeMu[matchID]
	current := cm.connections[matchID] == conn
	cm.mu.RUnlock()

	if !exists || !current {
		return websocket.ErrCloseSent
	}

	mu.Lock()
	defer mu.Unlock()
	return conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}
