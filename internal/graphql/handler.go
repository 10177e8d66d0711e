package graphql

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v4"
	graphql "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"

	"github.com/xarthos/portfolio-server/internal/auth"
	"github.com/xarthos/portfolio-server/internal/user"
)

// Handler serves the /graphql endpoint.
type Handler struct {
	schema *graphql.Schema
	users  user.Repository
	log    *zap.Logger
}

func NewHandler(resolver *Resolver, users user.Repository, log *zap.Logger) (*Handler, error) {
	schema, err := graphql.ParseSchema(Schema, resolver)
	if err != nil {
		return nil, err
	}
	return &Handler{schema: schema, users: users, log: log}, nil
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/graphql", h.Post)
}

type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

func (h *Handler) Post(c *fiber.Ctx) error {
	payload := new(request)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	resp := h.schema.Exec(h.buildContext(c), payload.Query, payload.OperationName, payload.Variables)
	return c.JSON(resp)
}

// buildContext assembles the per-request context the resolvers see: the
// response header sink, the session marker and, when the cookie token
// is valid, the current user.
func (h *Handler) buildContext(c *fiber.Ctx) context.Context {
	ctx := auth.WithSink(c.UserContext(), fiberSink{c: c})

	session := auth.Session{}
	if id, err := userIDFromLocals(c); err == nil {
		if u, err := h.users.FindByID(ctx, id); err == nil {
			session.IsAuth = true
			ctx = auth.WithUser(ctx, &u)
		} else {
			h.log.Debug("session user lookup failed", zap.Error(err))
		}
	}

	return auth.WithSession(ctx, session)
}

// userIDFromLocals extracts the userId claim from the token the cookie
// middleware stored in locals. Anything short of a well-formed claim is
// an anonymous request.
func userIDFromLocals(c *fiber.Ctx) (string, error) {
	v := c.Locals("user")
	if v == nil {
		return "", fiber.ErrUnauthorized
	}
	tok, ok := v.(*jwt.Token)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", fiber.ErrUnauthorized
	}

	id, _ := claims["userId"].(string)
	if id == "" {
		return "", fiber.ErrUnauthorized
	}
	return id, nil
}

// fiberSink adapts the fiber response to the auth.HeaderSink contract.
// fasthttp header writes do not return errors, so a panic during the
// write is converted into one here to keep cookie failures non-fatal.
type fiberSink struct {
	c *fiber.Ctx
}

func (s fiberSink) SetHeader(key, value string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("set header: %v", r)
		}
	}()

	s.c.Set(key, value)
	return nil
}
