package eventfeed

import (
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"resource_broker/internal/config"
	"resource_broker/internal/core"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

var (
	feedActiveConnections = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "broker_feed_active_connections",
		Help: "Current number of active event feed connections",
	})

	feedRejectedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "broker_feed_rejected_total",
		Help: "Total number of rejected event feed connections",
	}, []string{"reason"})
)

func init() {
	prometheus.MustRegister(feedActiveConnections)
	prometheus.MustRegister(feedRejectedTotal)
}

// Feed exposes the hub over a websocket endpoint and implements
// core.IEventSink for the broker engine.
type Feed struct {
	hub            *Hub
	logger         core.ILogger
	upgrader       websocket.Upgrader
	allowedOrigins []string

	connSemaphore chan struct{}

	ipLimiters sync.Map // map[string]*rate.Limiter
	rateLimit  rate.Limit
	rateBurst  int
}

// NewFeed creates a feed from its config section
func NewFeed(cfg config.FeedConfig, logger core.ILogger) *Feed {
	maxConns := cfg.MaxConnections
	if maxConns <= 0 {
		maxConns = 256
	}
	f := &Feed{
		hub:            NewHub(logger),
		logger:         logger.WithField("component", "eventfeed"),
		allowedOrigins: cfg.AllowedOrigins,
		connSemaphore:  make(chan struct{}, maxConns),
		rateLimit:      rate.Limit(cfg.RateLimit),
		rateBurst:      cfg.RateBurst,
	}
	f.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     f.checkOrigin,
	}
	return f
}

// Hub returns the underlying hub; its Run loop must be started by the caller
func (f *Feed) Hub() *Hub {
	return f.hub
}

// Publish implements core.IEventSink
func (f *Feed) Publish(eventType string, data interface{}) {
	f.hub.Broadcast(Message{Type: eventType, Data: data})
}

// ClientCount returns the number of connected observers
func (f *Feed) ClientCount() int {
	return f.hub.ClientCount()
}

// checkOrigin validates the Origin header against the whitelist. An empty
// whitelist allows non-browser clients (no Origin header) only.
func (f *Feed) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		// Non-browser clients send no Origin header
		return true
	}

	parsedOrigin, err := url.Parse(origin)
	if err != nil {
		f.logger.Warn("Rejected feed connection with invalid Origin", "origin", origin, "error", err)
		return false
	}
	originStr := parsedOrigin.Scheme + "://" + parsedOrigin.Host

	for _, allowed := range f.allowedOrigins {
		if allowed == "*" || originStr == allowed {
			return true
		}
	}

	f.logger.Warn("Rejected feed connection from unauthorized origin",
		"origin", origin,
		"remote_addr", r.RemoteAddr)
	feedRejectedTotal.WithLabelValues("invalid_origin").Inc()
	return false
}

func (f *Feed) getRemoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (f *Feed) getIPLimiter(ip string) *rate.Limiter {
	if v, ok := f.ipLimiters.Load(ip); ok {
		return v.(*rate.Limiter)
	}
	limiter := rate.NewLimiter(f.rateLimit, f.rateBurst)
	actual, _ := f.ipLimiters.LoadOrStore(ip, limiter)
	return actual.(*rate.Limiter)
}

// HandleWebSocket upgrades the connection and pumps feed messages until
// the client disconnects. Mount it on the observability server's /ws.
func (f *Feed) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	// Rate limits apply before the upgrade consumes resources
	if f.rateLimit > 0 {
		ip := f.getRemoteIP(r)
		if !f.getIPLimiter(ip).Allow() {
			f.logger.Warn("Feed IP rate limit exceeded", "ip", ip)
			feedRejectedTotal.WithLabelValues("rate_limit").Inc()
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
	}

	select {
	case f.connSemaphore <- struct{}{}:
		feedActiveConnections.Inc()
		defer func() {
			<-f.connSemaphore
			feedActiveConnections.Dec()
		}()
	default:
		f.logger.Warn("Feed connection limit reached")
		feedRejectedTotal.WithLabelValues("connection_limit").Inc()
		http.Error(w, "Server busy", http.StatusServiceUnavailable)
		return
	}

	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.logger.Warn("Feed upgrade failed", "error", err)
		return
	}

	clientID := uuid.New().String()
	client := NewClient(clientID)
	f.hub.Register(client)
	f.logger.Info("Feed client connected", "client_id", clientID, "remote_addr", r.RemoteAddr)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		f.writePump(conn, client)
	}()
	go func() {
		defer wg.Done()
		f.readPump(conn, client)
	}()
	wg.Wait()

	f.hub.Unregister(client)
	conn.Close()
	f.logger.Info("Feed client disconnected", "client_id", clientID)
}

// writePump sends feed messages and keepalive pings to the connection
func (f *Feed) writePump(conn *websocket.Conn, client *Client) {
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-client.Messages():
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(msg); err != nil {
				f.logger.Warn("Feed write error", "client_id", client.id, "error", err)
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains the connection for pong handling; feed clients never
// send application data.
func (f *Feed) readPump(conn *websocket.Conn, client *Client) {
	defer func() {
		f.hub.Unregister(client)
	}()

	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				f.logger.Warn("Feed read error", "client_id", client.id, "error", err)
			}
			break
		}
	}
}
