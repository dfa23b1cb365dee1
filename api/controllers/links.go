package controllers

import (
	"net/http"

	"github.com/tuanphamm/supplydash-backend/api/responses"
	"github.com/tuanphamm/supplydash-backend/api/validators"
	"github.com/tuanphamm/supplydash-backend/internal/links"
	pkgerrors "github.com/tuanphamm/supplydash-backend/pkg/errors"
	"github.com/tuanphamm/supplydash-backend/pkg/logger"
)

// linkKeys names the chi route parameters and query parameters for one
// association's endpoints, e.g. "orderId"/"productId".
type linkKeys struct {
	left  string
	right string
}

// linkDecode validates a request body and returns the row plus its key pair.
type linkDecode[T any] func(r *http.Request) (*T, int, int, error)

func listLinks[T any](svc *links.Service[T], logg *logger.Logger, keys linkKeys) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "association service unavailable"))
			return
		}

		page, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		leftID, err := validators.ParseOptionalQueryInt(r, keys.left)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		rightID, err := validators.ParseOptionalQueryInt(r, keys.right)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, total, err := svc.List(r.Context(), page, leftID, rightID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WritePage(w, rows, total)
	}
}

func getLink[T any](svc *links.Service[T], logg *logger.Logger, keys linkKeys) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "association service unavailable"))
			return
		}

		leftID, rightID, err := linkPathIDs(r, keys)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row, err := svc.Get(r.Context(), leftID, rightID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, row)
	}
}

func createLink[T any](svc *links.Service[T], logg *logger.Logger, decode linkDecode[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "association service unavailable"))
			return
		}

		row, leftID, rightID, err := decode(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Create(r.Context(), row, leftID, rightID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, row)
	}
}

func updateLink[T any](svc *links.Service[T], logg *logger.Logger, keys linkKeys, decode func(r *http.Request) (map[string]any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "association service unavailable"))
			return
		}

		leftID, rightID, err := linkPathIDs(r, keys)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		values, err := decode(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Update(r.Context(), values, leftID, rightID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row, err := svc.Get(r.Context(), leftID, rightID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, row)
	}
}

func deleteLink[T any](svc *links.Service[T], logg *logger.Logger, keys linkKeys) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "association service unavailable"))
			return
		}

		leftID, rightID, err := linkPathIDs(r, keys)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), leftID, rightID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusOK, map[string]any{keys.left: leftID, keys.right: rightID, "deleted": true})
	}
}

func linkPathIDs(r *http.Request, keys linkKeys) (int, int, error) {
	leftID, err := validators.ParsePathID(r, keys.left)
	if err != nil {
		return 0, 0, err
	}
	rightID, err := validators.ParsePathID(r, keys.right)
	if err != nil {
		return 0, 0, err
	}
	return leftID, rightID, nil
}
