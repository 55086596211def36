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

package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/pkg/profile"

	"github.com/suhasj2003/juujfish/internal/config"
	"github.com/suhasj2003/juujfish/internal/engine"
	"github.com/suhasj2003/juujfish/internal/logx"
	"github.com/suhasj2003/juujfish/internal/position"

	. "github.com/suhasj2003/juujfish/internal/types"
)

func main() {
	fen := flag.String("fen", position.StartFen, "FEN of the position to search")
	depth := flag.Int("depth", 8, "iterative-deepening depth cap")
	threads := flag.Int("threads", 0, "worker count (0 = use config.toml's Engine.Threads)")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	cpuProfile := flag.Bool("profile", false, "write a CPU profile to ./cpu.pprof for the duration of the search")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()
	if *threads > 0 {
		config.Settings.Engine.Threads = *threads
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	pos, err := position.NewFromFen(*fen)
	if err != nil {
		fmt.Println("invalid fen:", err)
		return
	}

	pool := engine.NewPool(config.Settings.TT.SizeInMB)
	pool.Start(pos, *depth)
	result := pool.Wait()

	logx.Get().Infof("search finished: depth=%d nodes=%d", result.Depth, result.Nodes)

	fmt.Printf("bestmove %s\n", result.BestMove.StringUci())
	fmt.Printf("score %d\n", result.BestScore)
	fmt.Printf("depth %d\n", result.Depth)
	fmt.Printf("nodes %d\n", result.Nodes)
	fmt.Printf("pv %s\n", pvString(pool.PV()))
}

// pvString renders a principal variation as space-separated long-algebraic
// moves, matching the engine's long-algebraic move I/O convention.
func pvString(pv []Move) string {
	moves := make([]string, len(pv))
	for i, m := range pv {
		moves[i] = m.StringUci()
	}
	return strings.Join(moves, " ")
}
