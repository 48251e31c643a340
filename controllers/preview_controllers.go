package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/menu-studio/preview"
	"github.com/yeremiapane/menu-studio/services"
	"github.com/yeremiapane/menu-studio/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // origin sudah dibatasi oleh CORS + token
	},
}

type PreviewController struct {
	Hub     *preview.Hub
	Service *services.RenderService
}

func NewPreviewController(hub *preview.Hub, service *services.RenderService) *PreviewController {
	return &PreviewController{Hub: hub, Service: service}
}

// PreviewSocket -> endpoint WebSocket. Every text frame is a draft to
// render. Drafts are rendered one at a time and only the newest draft of
// the socket gets an answer.
func (pc *PreviewController) PreviewSocket(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	slug := c.Param("slug")

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	id, _ := userID.(uint)
	client := pc.Hub.Register(ws, slug, id)
	session := "ws:" + uuid.NewString()
	log := utils.Info(logrus.Fields{"slug": slug, "user_id": id, "session": session})
	log.Info("preview connected")

	ctx, cancel := context.WithCancel(context.Background())
	queue := newDraftQueue()
	done := make(chan struct{})
	go func() {
		defer close(done)
		queue.run(ctx, slug, func(ctx context.Context, body previewBody) (interface{}, error) {
			return pc.Service.Preview(ctx, services.PreviewRequest{
				Session:    session,
				Slug:       slug,
				Locale:     body.Locale,
				TemplateID: body.Template,
				Draft:      body.Draft,
			})
		}, client.Send)
	}()

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			break
		}

		var body previewBody
		if err := json.Unmarshal(data, &body); err != nil {
			client.Send(preview.Message{Event: preview.EventError, Slug: slug, Data: "invalid draft payload"})
			continue
		}
		queue.push(body)
	}

	// Unregister saat disconnect
	cancel()
	queue.close()
	<-done
	pc.Service.Loader.Forget(session)
	pc.Hub.Unregister(client)
	log.Info("preview disconnected")
}

type draftFrame struct {
	gen  uint64
	body previewBody
}

// draftQueue holds at most one pending draft; a newer push replaces it.
// push and close must be called from a single goroutine.
type draftQueue struct {
	gen     atomic.Uint64
	pending chan draftFrame
}

func newDraftQueue() *draftQueue {
	return &draftQueue{pending: make(chan draftFrame, 1)}
}

func (q *draftQueue) push(body previewBody) {
	f := draftFrame{gen: q.gen.Add(1), body: body}
	select {
	case <-q.pending:
	default:
	}
	q.pending <- f
}

func (q *draftQueue) close() { close(q.pending) }

func (q *draftQueue) latest(gen uint64) bool { return q.gen.Load() == gen }

// run renders queued drafts in order until the queue is closed. A result
// is dropped when a newer draft was pushed while it rendered.
func (q *draftQueue) run(
	ctx context.Context,
	slug string,
	render func(context.Context, previewBody) (interface{}, error),
	send func(preview.Message) error,
) {
	for f := range q.pending {
		if ctx.Err() != nil {
			continue
		}
		result, err := render(ctx, f.body)
		if ctx.Err() != nil || !q.latest(f.gen) || errors.Is(err, services.ErrStaleResponse) {
			continue
		}

		msg := preview.Message{Event: preview.EventRendered, Slug: slug, Data: result}
		if err != nil {
			msg = preview.Message{Event: preview.EventError, Slug: slug, Data: err.Error()}
		}
		if err := send(msg); err != nil {
			utils.Error(logrus.Fields{"slug": slug, "error": err}).Warn("preview write failed")
		}
	}
}
