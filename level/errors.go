// SPDX-License-Identifier: MIT

package level

import "errors"

// ErrStageAborted indicates a WithOnStage hook stopped generation.
// The hook's own error is wrapped alongside it.
var ErrStageAborted = errors.New("level: generation aborted by stage hook")
