/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults_SearchConfig(t *testing.T) {
	assert.True(t, Settings.Search.UsePVS)
	assert.True(t, Settings.Search.UseTT)
	assert.True(t, Settings.Search.UseQuiescence)
	assert.Equal(t, 64, Settings.Search.MaxDepth)
}

func TestDefaults_EvalConfig(t *testing.T) {
	assert.True(t, Settings.Eval.UseMobility)
	assert.True(t, Settings.Eval.UsePawnCache)
	assert.Equal(t, 16, Settings.Eval.PawnCacheSizeInMB)
	assert.Equal(t, 2, Settings.Eval.TempoBonus)
}

func TestDefaults_TTAndEngineConfig(t *testing.T) {
	assert.Equal(t, 64, Settings.TT.SizeInMB)
	assert.Equal(t, 8, Settings.Engine.Threads)
}

func TestSetup_IsIdempotent(t *testing.T) {
	before := Settings
	Setup()
	Setup()
	assert.Equal(t, before, Settings)
}

func TestConf_StringListsAllFourSections(t *testing.T) {
	s := Settings.String()
	assert.Contains(t, s, "Search:")
	assert.Contains(t, s, "Eval:")
	assert.Contains(t, s, "TT:")
	assert.Contains(t, s, "Engine:")
}
