package easing

import (
	"slices"

	"github.com/tanema/gween/ease"
)

var registry = map[string]Func{
	"linear": Linear,

	"easeInQuad":    InQuad,
	"easeOutQuad":   OutQuad,
	"easeInOutQuad": InOutQuad,

	"easeInCubic":    InCubic,
	"easeOutCubic":   OutCubic,
	"easeInOutCubic": InOutCubic,

	"easeInQuart":    InQuart,
	"easeOutQuart":   OutQuart,
	"easeInOutQuart": InOutQuart,

	"easeInQuint":    InQuint,
	"easeOutQuint":   OutQuint,
	"easeInOutQuint": InOutQuint,

	"easeInSine":    InSine,
	"easeOutSine":   OutSine,
	"easeInOutSine": InOutSine,

	"easeInExpo":    InExpo,
	"easeOutExpo":   OutExpo,
	"easeInOutExpo": InOutExpo,

	"easeInCirc":    InCirc,
	"easeOutCirc":   OutCirc,
	"easeInOutCirc": InOutCirc,

	"easeInBack":    InBack,
	"easeOutBack":   OutBack,
	"easeInOutBack": InOutBack,

	"easeInElastic":    InElastic,
	"easeOutElastic":   OutElastic,
	"easeInOutElastic": InOutElastic,

	"easeInBounce":    InBounce,
	"easeOutBounce":   OutBounce,
	"easeInOutBounce": InOutBounce,

	"ease":        Ease,
	"ease-in":     EaseIn,
	"ease-out":    EaseOut,
	"ease-in-out": EaseInOut,

	"penner.linear":     FromPenner(ease.Linear),
	"penner.inOutQuad":  FromPenner(ease.InOutQuad),
	"penner.outCubic":   FromPenner(ease.OutCubic),
	"penner.inOutCubic": FromPenner(ease.InOutCubic),
	"penner.inOutSine":  FromPenner(ease.InOutSine),
	"penner.outBounce":  FromPenner(ease.OutBounce),
	"penner.outElastic": FromPenner(ease.OutElastic),
}

// Lookup returns the curve registered under name.
//
// Names follow the web convention ("easeInOutCubic"), the CSS keywords
// ("ease-in-out"), or "penner.<name>" for the gween implementations.
func Lookup(name string) (Func, bool) {
	fn, ok := registry[name]
	return fn, ok
}

// Names returns every registered curve name in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
