/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package analytics records time-stamped request events and answers popularity and load queries over them.
package analytics

import (
	"slices"
	"sort"
	"sync"
	"time"
)

// DefaultWindow is the trailing window used by trending and peak load queries.
const DefaultWindow = 30 * time.Second

// Event is a single recorded action.
type Event struct {
	Subject   string
	Timestamp time.Time
}

// SubjectCount is a subject together with the number of times it was recorded.
type SubjectCount struct {
	Subject string `json:"subject"`
	Count   int    `json:"count"`
}

type subjectStat struct {
	count    int
	lastSeen time.Time
}

type options struct {
	clock func() time.Time
}

// Option configures a Store.
type Option func(*options)

// WithClock overrides the time source used to stamp recorded events.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// Store is an append-only log of events with per-subject counts kept in step with the log.
type Store struct {
	mu       sync.Mutex
	clock    func() time.Time
	events   []Event
	subjects map[string]*subjectStat
	// firstSeen lists subjects in the order they were first recorded and breaks count ties.
	firstSeen []string
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store{
		clock:    o.clock,
		subjects: make(map[string]*subjectStat),
	}
}

// Record appends an event for subject stamped with the current time.
func (s *Store) Record(subject string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	event := Event{Subject: subject, Timestamp: now}

	// The log stays sorted by timestamp even if the clock steps backwards.
	if n := len(s.events); n == 0 || !now.Before(s.events[n-1].Timestamp) {
		s.events = append(s.events, event)
	} else {
		i := sort.Search(n, func(i int) bool { return s.events[i].Timestamp.After(now) })
		s.events = slices.Insert(s.events, i, event)
	}

	stat, ok := s.subjects[subject]
	if !ok {
		stat = &subjectStat{}
		s.subjects[subject] = stat
		s.firstSeen = append(s.firstSeen, subject)
	}
	stat.count++
	if now.After(stat.lastSeen) {
		stat.lastSeen = now
	}
}

// Zeitgeist returns up to limit subjects ordered by how often they were recorded.
func (s *Store) Zeitgeist(limit int) []string {
	if limit <= 0 {
		return []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rank(limit, func(*subjectStat) bool { return true })
}

// Trending returns up to limit subjects whose most recent event lies within [now-window, now],
// ordered by how often they were recorded overall.
func (s *Store) Trending(limit int, now time.Time, window time.Duration) []string {
	if limit <= 0 {
		return []string{}
	}
	from := now.Add(-window)

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rank(limit, func(stat *subjectStat) bool {
		return !stat.lastSeen.Before(from) && !stat.lastSeen.After(now)
	})
}

// TopCounts returns up to limit subjects with their counts, ordered as Zeitgeist orders them.
func (s *Store) TopCounts(limit int) []SubjectCount {
	subjects := s.Zeitgeist(limit)

	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make([]SubjectCount, 0, len(subjects))
	for _, subject := range subjects {
		counts = append(counts, SubjectCount{Subject: subject, Count: s.subjects[subject].count})
	}
	return counts
}

// PeakLoad returns the largest number of events that fall within any window that starts at a
// recorded event. Calling it records nothing.
func (s *Store) PeakLoad(window time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	peak := 0
	end := 0
	for start := range s.events {
		limit := s.events[start].Timestamp.Add(window)
		if end < start {
			end = start
		}
		for end < len(s.events) && !s.events[end].Timestamp.After(limit) {
			end++
		}
		if load := end - start; load > peak {
			peak = load
		}
	}
	return peak
}

// Len returns the number of recorded events.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}
