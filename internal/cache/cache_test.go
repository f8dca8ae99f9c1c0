/*
Copyright 2025 Truna Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
)

func newTestCache(t *testing.T) Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := newRedisCache([]string{mr.Addr()}, false)
	assert.NoError(t, err)
	return c
}

func TestCacheSetGet(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	mappings := map[string]string{"FR01": "A01", "FR02": "A02"}
	err := c.Set(ctx, "mappings:tenant-1", mappings, time.Minute)
	assert.NoError(t, err)

	var got map[string]string
	err = c.Get(ctx, "mappings:tenant-1", &got)
	assert.NoError(t, err)
	assert.Equal(t, mappings, got)
}

func TestCacheMissIsNotAnError(t *testing.T) {
	c := newTestCache(t)

	var got map[string]string
	err := c.Get(context.Background(), "mappings:absent", &got)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheDelete(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	assert.NoError(t, c.Delete(ctx, "k"))

	var got string
	assert.NoError(t, c.Get(ctx, "k", &got))
	assert.Empty(t, got)
}
