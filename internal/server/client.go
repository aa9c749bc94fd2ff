package server

import (
	"net/http"
	"time"

	"rift-server/internal/engine"
	"rift-server/pkg/api"
	"rift-server/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - зритель одного матча. Только читает кадры.
type Client struct {
	Game  *engine.GameService
	Match *engine.Match
	Conn  *websocket.Conn

	subID  string
	frames <-chan api.MatchFrame
	log    *logrus.Entry
}

func NewClient(game *engine.GameService, m *engine.Match, conn *websocket.Conn) *Client {
	subID, frames := game.Hub.Subscribe(m.ID)
	return &Client{
		Game:   game,
		Match:  m,
		Conn:   conn,
		subID:  subID,
		frames: frames,
		log: logger.Log.WithFields(logrus.Fields{
			"component": "spectator",
			"match_id":  m.ID,
			"sub_id":    subID,
		}),
	}
}

// readPump держит соединение живым и ловит закрытие со стороны клиента.
// Входящие сообщения зрителя игнорируются.
func (c *Client) readPump() {
	defer func() {
		c.Game.Hub.Unsubscribe(c.Match.ID, c.subID)
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection")
		}
		c.log.Info("Spectator disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	c.log.Info("Spectator connected")

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.WithError(err).Warn("WS error")
			}
			return
		}
	}
}

// writePump отправляет кадры зрителю + Ping. Первым уходит текущий
// кадр, чтобы клиент сразу нарисовал карту.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	initial := engine.BuildFrame(c.Match.ID, c.Match.State(), nil)
	if err := c.write(initial); err != nil {
		return
	}

	for {
		select {
		case frame, ok := <-c.frames:
			if !ok {
				// Матч завершен или зритель отписан.
				_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := c.Conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "match finished")); err != nil {
					c.log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.write(frame); err != nil {
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}

func (c *Client) write(frame api.MatchFrame) error {
	if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		c.log.WithError(err).Warn("failed to set write deadline")
	}
	if err := c.Conn.WriteJSON(frame); err != nil {
		c.log.WithError(err).Debug("write json message failed")
		return err
	}
	return nil
}
