package inbound

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/shandysiswandi/goblog/internal/blog/entity"
	"github.com/shandysiswandi/goblog/internal/blog/usecase"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgrouter"
)

// maxFieldSize caps each non-file multipart field.
const maxFieldSize int64 = 64 << 10

// maxParts caps the number of parts in one multipart body, the image included.
const maxParts = 16

const imageField = "image"

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Create(ctx context.Context, r *http.Request) (any, error) {
	var (
		req   CreateRequest
		image string
		err   error
	)

	if isMultipart(r) {
		req, image, err = h.readMultipart(ctx, r)
	} else {
		err = pkgrouter.Bind(r, &req)
	}
	if err != nil {
		return nil, err
	}

	blog, err := h.uc.Create(ctx, usecase.CreateInput{
		Title:      req.Title,
		Content:    req.Content,
		AuthorID:   req.AuthorID,
		CategoryID: req.CategoryID,
		Image:      image,
	})
	if err != nil {
		return nil, err
	}

	return CreatedBlog{Blog: toHTTPBlog(blog)}, nil
}

func (h *HTTPEndpoint) List(ctx context.Context, r *http.Request) (any, error) {
	query := r.URL.Query()

	page, pageSize, err := parsePagination(query.Get("page"), query.Get("page_size"))
	if err != nil {
		return nil, err
	}

	result, err := h.uc.List(ctx, usecase.ListInput{
		Filter: entity.Filter{
			AuthorID:   strings.TrimSpace(query.Get("author_id")),
			CategoryID: strings.TrimSpace(query.Get("category_id")),
		},
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, err
	}

	blogs := make([]Blog, 0, len(result.Blogs))
	for _, b := range result.Blogs {
		blogs = append(blogs, toHTTPBlog(b))
	}

	return ListResponse{
		Blogs:    blogs,
		page:     result.Page,
		pageSize: result.PageSize,
		total:    result.Total,
	}, nil
}

func (h *HTTPEndpoint) Get(ctx context.Context, _ *http.Request) (any, error) {
	blog, err := h.uc.Get(ctx, pkgrouter.GetTrimmedParam(ctx, "id"))
	if err != nil {
		return nil, err
	}

	return toHTTPBlog(blog), nil
}

func (h *HTTPEndpoint) Delete(ctx context.Context, _ *http.Request) (any, error) {
	if err := h.uc.Delete(ctx, pkgrouter.GetTrimmedParam(ctx, "id")); err != nil {
		return nil, err
	}

	return nil, nil
}

func parsePagination(pageRaw, sizeRaw string) (int, int, error) {
	page := 1
	pageSize := 10

	if pageRaw != "" {
		value, err := strconv.Atoi(pageRaw)
		if err != nil || value < 1 {
			return 0, 0, pkgerror.NewInvalidInput(errors.New("invalid page"))
		}
		page = value
	}

	if sizeRaw != "" {
		value, err := strconv.Atoi(sizeRaw)
		if err != nil || value < 1 {
			return 0, 0, pkgerror.NewInvalidInput(errors.New("invalid page_size"))
		}
		if value > 100 {
			value = 100
		}
		pageSize = value
	}

	return page, pageSize, nil
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && strings.EqualFold(mediaType, "multipart/form-data")
}

// readMultipart streams the parts of a multipart body. The image part is
// written to storage as it arrives; any later failure discards it.
func (h *HTTPEndpoint) readMultipart(ctx context.Context, r *http.Request) (CreateRequest, string, error) {
	var req CreateRequest
	image := ""

	fail := func(err error) (CreateRequest, string, error) {
		h.uc.DiscardImage(ctx, image)
		return CreateRequest{}, "", err
	}

	reader, err := r.MultipartReader()
	if err != nil {
		return fail(pkgerror.NewInvalidFormat())
	}

	for parts := 0; ; parts++ {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			return req, image, nil
		}
		if err != nil {
			return fail(pkgerror.NewInvalidFormat())
		}
		if parts == maxParts {
			_ = part.Close()
			return fail(pkgerror.NewInvalidInput(errors.New("too many form parts")))
		}

		if part.FormName() == imageField && part.FileName() != "" {
			if image != "" {
				_ = part.Close()
				return fail(pkgerror.NewInvalidInput(errors.New("only one image is allowed")))
			}
			image, err = h.uc.SaveImage(ctx, part.FileName(), part)
			_ = part.Close()
			if err != nil {
				return fail(err)
			}
			continue
		}

		value, err := readField(part)
		_ = part.Close()
		if err != nil {
			return fail(err)
		}

		switch part.FormName() {
		case "title":
			req.Title = value
		case "content":
			req.Content = value
		case "author_id":
			req.AuthorID = value
		case "category_id":
			req.CategoryID = value
		}
	}
}

func readField(part io.Reader) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(part, maxFieldSize+1))
	if err != nil {
		return "", pkgerror.NewInvalidFormat()
	}
	if int64(len(raw)) > maxFieldSize {
		return "", pkgerror.NewBodyTooLarge()
	}
	return string(raw), nil
}
