package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/domino14/bitgrid/board"
)

func parseSquares(args []string) ([]board.Square, error) {
	if len(args) == 0 {
		return nil, errors.New("need at least one square, e.g. `set e4`")
	}
	sqs := make([]board.Square, len(args))
	for i, arg := range args {
		sq, err := board.ParseSquare(arg)
		if err != nil {
			return nil, err
		}
		sqs[i] = sq
	}
	return sqs, nil
}

func (sc *ShellController) setSquares(args []string) error {
	sqs, err := parseSquares(args)
	if err != nil {
		return err
	}
	for _, sq := range sqs {
		if sc.board.Set(sq) {
			log.Debug().Msgf("%v was already set", sq)
			continue
		}
		sc.curKey = sc.hasher.AddRemove(sc.curKey, sq)
	}
	sc.showMessage(fmt.Sprintf("%d squares set", sc.board.Count()))
	return nil
}

func (sc *ShellController) clearSquares(args []string) error {
	sqs, err := parseSquares(args)
	if err != nil {
		return err
	}
	for _, sq := range sqs {
		if !sc.board.Clear(sq) {
			log.Debug().Msgf("%v was already clear", sq)
			continue
		}
		sc.curKey = sc.hasher.AddRemove(sc.curKey, sq)
	}
	sc.showMessage(fmt.Sprintf("%d squares remain", sc.board.Count()))
	return nil
}

func (sc *ShellController) putSquare(args []string) error {
	if len(args) != 2 {
		return errors.New("put needs a square and a boolean, e.g. `put e4 true`")
	}
	sq, err := board.ParseSquare(args[0])
	if err != nil {
		return err
	}
	value, err := strconv.ParseBool(args[1])
	if err != nil {
		return fmt.Errorf("%v is not a boolean", args[1])
	}
	prior := sc.board.Put(sq, value)
	if prior != value {
		sc.curKey = sc.hasher.AddRemove(sc.curKey, sq)
	}
	sc.showMessage(fmt.Sprintf("%v: %v (was %v)", sq, value, prior))
	return nil
}

func (sc *ShellController) getSquare(args []string) error {
	if len(args) != 1 {
		return errors.New("get needs exactly one square, e.g. `get e4`")
	}
	sq, err := board.ParseSquare(args[0])
	if err != nil {
		return err
	}
	sc.showMessage(fmt.Sprintf("%v: %v", sq, sc.board.Get(sq)))
	return nil
}

func (sc *ShellController) show(args []string) error {
	sc.showMessage(sc.board.String())
	return nil
}

func (sc *ShellController) count(args []string) error {
	sc.showMessage(strconv.Itoa(sc.board.Count()))
	return nil
}

func (sc *ShellController) status(args []string) error {
	if sc.board.None() {
		sc.showMessage("board is empty")
		return nil
	}
	sc.showMessage(fmt.Sprintf("%d of 64 squares set", sc.board.Count()))
	return nil
}

func (sc *ShellController) list(args []string) error {
	if sc.board.None() {
		sc.showMessage("board is empty")
		return nil
	}
	notations := lo.Map(sc.board.Squares(), func(sq board.Square, _ int) string {
		return sq.String()
	})
	sc.showMessage(strings.Join(notations, " "))
	return nil
}

// only extracts the unique member of a singleton board.
func (sc *ShellController) only(args []string) error {
	sq, err := sc.board.Square()
	if err != nil {
		return err
	}
	sc.showMessage(sq.String())
	return nil
}

func (sc *ShellController) random(args []string) error {
	if len(args) != 1 {
		return errors.New("random needs a count, e.g. `random 12`")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 || n > 64 {
		return errors.New("count must be an integer in [0, 64]")
	}
	sc.board = 0
	sc.curKey = 0
	for sc.board.Count() < n {
		sq, err := board.SquareFromIndex(uint8(frand.Intn(64)))
		if err != nil {
			return err
		}
		if !sc.board.Set(sq) {
			sc.curKey = sc.hasher.AddRemove(sc.curKey, sq)
		}
	}
	sc.showMessage(sc.board.String())
	return nil
}

func (sc *ShellController) reset(args []string) error {
	sc.board = 0
	sc.curKey = 0
	sc.showMessage("board cleared")
	return nil
}

func (sc *ShellController) hash(args []string) error {
	full := sc.hasher.Hash(sc.board)
	if full != sc.curKey {
		// should never happen; the incremental key tracks every mutation
		log.Error().Uint64("full", full).Uint64("incremental", sc.curKey).
			Msg("hash-mismatch")
	}
	sc.showMessage(fmt.Sprintf("%x", sc.curKey))
	return nil
}

func (sc *ShellController) index(args []string) error {
	if len(args) != 1 {
		return errors.New("index needs exactly one square, e.g. `index e4`")
	}
	sq, err := board.ParseSquare(args[0])
	if err != nil {
		return err
	}
	sc.showMessage(strconv.Itoa(int(sq.Index())))
	return nil
}

func (sc *ShellController) square(args []string) error {
	if len(args) != 1 {
		return errors.New("square needs a linear index, e.g. `square 28`")
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil || idx < 0 || idx > 255 {
		return fmt.Errorf("%v is not a valid index", args[0])
	}
	sq, err := board.SquareFromIndex(uint8(idx))
	if err != nil {
		return err
	}
	sc.showMessage(sq.String())
	return nil
}
