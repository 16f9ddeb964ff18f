package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"github.com/franchise-ops/collections/receivables/model"
)

const Header = "X-Idempotency-Key"

// Identifier is implemented by request payloads that have a canonical identity. Retries
// under the same key are compared by that identity instead of by their JSON encoding, so
// the same título sent with a formatted CNPJ or a day-first date is still a replay.
type Identifier interface {
	IdempotencyIdentity() (string, error)
}

// Middleware replays the stored response of a request already completed under the same
// X-Idempotency-Key and rejects a concurrent one still in flight.
//
//encore:middleware target=tag:idempotency
func Middleware(req middleware.Request, next middleware.Next) middleware.Response {
	key, err := extractKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	cacheKey := model.IdempotencyKey{
		Resource: req.Data().Path,
		Key:      key,
	}
	bodyHash := payloadHash(req.Data().Payload)

	entry, cacheErr := requestCache.Get(req.Context(), cacheKey)
	if cacheErr == nil {
		return replay(req, next, entry, bodyHash, key)
	}
	if !errors.Is(cacheErr, cache.Miss) {
		rlog.Error("idempotency lookup failed", "key", key, "error", cacheErr)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"},
		}
	}

	if err := markProcessing(req.Context(), cacheKey, bodyHash); err != nil {
		return middleware.Response{Err: err}
	}

	resp := next(req)
	if resp.Err != nil {
		// Failed requests may be retried with the same key.
		release(req.Context(), cacheKey)
		return resp
	}

	markCompleted(req.Context(), cacheKey, bodyHash, resp)
	return resp
}

func extractKey(req middleware.Request) (string, *errs.Error) {
	var key string
	if headers := req.Data().Headers; headers != nil {
		key = strings.TrimSpace(headers.Get(Header))
	}
	if key == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: Header + " header is required"}
	}
	return key, nil
}

func replay(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, bodyHash, key string) middleware.Response {
	if err := checkConflict(entry, bodyHash); err != nil {
		return middleware.Response{Err: err}
	}

	switch entry.Status {
	case model.IdempotencyStatusProcessing:
		return inFlight(key)
	case model.IdempotencyStatusCompleted:
		if payload, ok := decodeStored(req, entry); ok {
			rlog.Info("returning stored response", "key", key)
			return middleware.Response{Payload: payload}
		}
		rlog.Warn("stored response unusable, processing again", "key", key)
		return next(req)
	default:
		rlog.Warn("unknown idempotency status, processing again", "key", key, "status", entry.Status)
		return next(req)
	}
}

func checkConflict(entry model.IdempotencyCacheEntry, bodyHash string) *errs.Error {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"}
	}
	return nil
}

func inFlight(key string) middleware.Response {
	rlog.Info("concurrent request detected", "key", key)
	return middleware.Response{
		Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"},
	}
}

func decodeStored(req middleware.Request, entry model.IdempotencyCacheEntry) (any, bool) {
	if len(entry.Response) == 0 {
		return nil, false
	}
	api := req.Data().API
	if api == nil || api.ResponseType == nil {
		return nil, false
	}
	payload := reflect.New(api.ResponseType.Elem()).Interface()
	if err := json.Unmarshal(entry.Response, payload); err != nil {
		rlog.Error("failed to decode stored response", "error", err)
		return nil, false
	}
	return payload, true
}

// markProcessing records the body hash too, so a different request arriving mid-flight
// is reported as a conflict rather than as a concurrent retry.
func markProcessing(ctx context.Context, cacheKey model.IdempotencyKey, bodyHash string) *errs.Error {
	err := requestCache.Set(ctx, cacheKey, model.IdempotencyCacheEntry{
		Status:          model.IdempotencyStatusProcessing,
		RequestBodyHash: bodyHash,
		CreatedAt:       time.Now(),
	})
	if err != nil {
		rlog.Error("failed to mark request as processing", "error", err)
		return &errs.Error{Code: errs.Internal, Message: "failed to mark request as processing"}
	}
	return nil
}

func release(ctx context.Context, cacheKey model.IdempotencyKey) {
	if _, err := requestCache.Delete(ctx, cacheKey); err != nil {
		rlog.Error("failed to release idempotency key", "error", err)
	}
}

func markCompleted(ctx context.Context, cacheKey model.IdempotencyKey, bodyHash string, resp middleware.Response) {
	entry := model.IdempotencyCacheEntry{
		Status:          model.IdempotencyStatusCompleted,
		RequestBodyHash: bodyHash,
		UpdatedAt:       time.Now(),
	}

	if resp.Payload != nil {
		raw, err := json.Marshal(resp.Payload)
		if err != nil {
			rlog.Error("failed to encode response for replay", "error", err)
			return
		}
		entry.Response = raw
	}

	if err := requestCache.Set(ctx, cacheKey, entry); err != nil {
		rlog.Error("failed to store completed response", "error", err)
	}
}

// payloadHash is the hex SHA-256 of the payload identity when it has one, otherwise of the
// JSON-encoded payload. It is "" when there is no payload.
func payloadHash(payload any) string {
	if payload == nil {
		return ""
	}
	if identifier, ok := payload.(Identifier); ok {
		identity, err := identifier.IdempotencyIdentity()
		if err == nil {
			return hashBytes([]byte(identity))
		}
		// The handler rejects it anyway; fall back to the raw encoding.
		rlog.Debug("payload has no identity, hashing its encoding", "error", err)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to encode request body", "error", err)
		return ""
	}
	return hashBytes(body)
}

func hashBytes(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
