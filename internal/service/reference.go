// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
)

// Reference resolution is create-first: the backend's lookup tables are
// append-only and the create endpoints reject duplicates, so a failed
// create followed by a case-insensitive scan of the list endpoint yields
// the existing record's id. The two-step dance makes resolution
// idempotent even though neither endpoint is on its own.

func (s *sessionService) ResolveCourseIDs(ctx context.Context, codes []string) ([]int64, error) {
	ids := make([]int64, 0, len(codes))
	for _, code := range codes {
		code = normalizeCourseCode(code)
		if code == "" {
			continue
		}
		id, err := s.resolveCourseID(ctx, code)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *sessionService) resolveCourseID(ctx context.Context, code string) (int64, error) {
	created, err := s.adapter.CreateCourse(ctx, code)
	if err == nil && created.ID != nil {
		return *created.ID, nil
	}
	s.logger.Debug().Str("code", code).Msg("course create refused, matching against course list")

	courses, err := s.adapter.ListCourses(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: course %q: %v", ErrUnresolvedReference, code, err)
	}
	for _, c := range courses {
		if c.ID == nil || c.Code == nil {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(*c.Code), code) {
			return *c.ID, nil
		}
	}
	return 0, fmt.Errorf("%w: course %q", ErrUnresolvedReference, code)
}

func (s *sessionService) ResolveMajorID(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: empty major name", ErrUnresolvedReference)
	}

	created, err := s.adapter.CreateMajor(ctx, name)
	if err == nil && created.ID != nil {
		return *created.ID, nil
	}
	s.logger.Debug().Str("major", name).Msg("major create refused, matching against major list")

	majors, err := s.adapter.ListMajors(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: major %q: %v", ErrUnresolvedReference, name, err)
	}
	for _, m := range majors {
		if m.ID == nil || m.Name == nil {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(*m.Name), name) {
			return *m.ID, nil
		}
	}
	return 0, fmt.Errorf("%w: major %q", ErrUnresolvedReference, name)
}

func (s *sessionService) ResolveCollegeID(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: empty college name", ErrUnresolvedReference)
	}

	created, err := s.adapter.CreateCollege(ctx, name)
	if err == nil && created.ID != nil {
		return *created.ID, nil
	}
	s.logger.Debug().Str("college", name).Msg("college create refused, matching against college list")

	colleges, err := s.adapter.ListColleges(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: college %q: %v", ErrUnresolvedReference, name, err)
	}
	for _, c := range colleges {
		if c.ID == nil || c.Name == nil {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(*c.Name), name) {
			return *c.ID, nil
		}
	}
	return 0, fmt.Errorf("%w: college %q", ErrUnresolvedReference, name)
}

// normalizeCourseCode canonicalises a course code for identity purposes:
// course codes are matched case-insensitively everywhere in the client.
func normalizeCourseCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
