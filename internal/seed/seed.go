// Package seed loads members and media from a YAML file into the catalog.
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/changhyeonkim/mediatheque-api/internal/catalog"
	"github.com/changhyeonkim/mediatheque-api/internal/member"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/logger"
	"github.com/gin-gonic/gin/binding"
	"gopkg.in/yaml.v3"
)

// File is the layout of a seed file
type File struct {
	Members []MemberEntry `yaml:"members"`
	Media   []MediaEntry  `yaml:"media"`
}

type MemberEntry struct {
	FirstName string `yaml:"firstName"`
	LastName  string `yaml:"lastName"`
	Email     string `yaml:"email"`
}

type MediaEntry struct {
	Type      string `yaml:"type"`
	Name      string `yaml:"name"`
	Creator   string `yaml:"creator"`
	Available *bool  `yaml:"available"`
}

// MemberCreator is satisfied by member.MemberService
type MemberCreator interface {
	CreateMember(ctx context.Context, request *member.MemberRequest) (*member.MemberResponse, error)
}

// MediaAdder is satisfied by catalog.CatalogService
type MediaAdder interface {
	AddMedia(ctx context.Context, request *catalog.CreateMediaRequest) (*catalog.MediaResponse, error)
}

// Result counts what Apply wrote
type Result struct {
	Members        int
	SkippedMembers int
	Media          int
}

// Load reads a seed file. Unknown keys are rejected.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes seed YAML and validates every entry
func Parse(data []byte) (*File, error) {
	var file File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse seed yaml: %w", err)
	}

	for i := range file.Members {
		if err := binding.Validator.ValidateStruct(file.Members[i].request()); err != nil {
			return nil, fmt.Errorf("members[%d]: %w", i, err)
		}
	}
	for i := range file.Media {
		if err := binding.Validator.ValidateStruct(file.Media[i].request()); err != nil {
			return nil, fmt.Errorf("media[%d]: %w", i, err)
		}
	}

	return &file, nil
}

// Apply creates the members and media of the file through the services.
// Members whose email is already registered are skipped.
func Apply(ctx context.Context, file *File, members MemberCreator, media MediaAdder) (Result, error) {
	log := logger.FromContext(ctx)
	var result Result

	for i := range file.Members {
		_, err := members.CreateMember(ctx, file.Members[i].request())
		if errors.Is(err, member.ErrMemberAlreadyExists) {
			log.Warn("seed member skipped, email already registered", "email", logger.MaskEmail(file.Members[i].Email))
			result.SkippedMembers++
			continue
		}
		if err != nil {
			return result, fmt.Errorf("seed members[%d]: %w", i, err)
		}
		result.Members++
	}

	for i := range file.Media {
		if _, err := media.AddMedia(ctx, file.Media[i].request()); err != nil {
			return result, fmt.Errorf("seed media[%d]: %w", i, err)
		}
		result.Media++
	}

	log.Info("seed applied",
		"members", result.Members,
		"skipped_members", result.SkippedMembers,
		"media", result.Media,
	)
	return result, nil
}

func (e MemberEntry) request() *member.MemberRequest {
	return &member.MemberRequest{
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
	}
}

func (e MediaEntry) request() *catalog.CreateMediaRequest {
	return &catalog.CreateMediaRequest{
		Type:      e.Type,
		Name:      e.Name,
		Creator:   e.Creator,
		Available: e.Available,
	}
}
